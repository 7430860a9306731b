package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/innkeeper-api/internal/application/service"
	"github.com/sangkips/innkeeper-api/internal/presentation/http/dto/request"
	"github.com/sangkips/innkeeper-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles the property profile
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings retrieves the current property
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	property, err := h.settingsService.GetProperty(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Settings retrieved successfully", property)
}

// UpdateSettings updates the current property
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	property, err := h.settingsService.UpdateProperty(c.Request.Context(), &service.UpdateSettingsInput{
		Name:           req.Name,
		Address:        req.Address,
		Phone:          req.Phone,
		Email:          req.Email,
		GSTIN:          req.GSTIN,
		CurrencySymbol: req.CurrencySymbol,
		Timezone:       req.Timezone,
		CheckInTime:    req.CheckInTime,
		CheckOutTime:   req.CheckOutTime,
		BookingPrefix:  req.BookingPrefix,
		ReceiptFooter:  req.ReceiptFooter,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Settings updated successfully", property)
}
