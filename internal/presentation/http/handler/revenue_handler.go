package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/innkeeper-api/internal/application/service"
	"github.com/sangkips/innkeeper-api/internal/presentation/http/dto/request"
	"github.com/sangkips/innkeeper-api/internal/presentation/http/dto/response"
	"github.com/sangkips/innkeeper-api/pkg/pagination"
)

// RevenueHandler exposes the revenue ledger
type RevenueHandler struct {
	revenueService *service.RevenueService
}

// NewRevenueHandler creates a new revenue handler
func NewRevenueHandler(revenueService *service.RevenueService) *RevenueHandler {
	return &RevenueHandler{revenueService: revenueService}
}

func (h *RevenueHandler) bindRange(c *gin.Context) (*request.RevenueFilterRequest, service.RevenueRange, bool) {
	var filter request.RevenueFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return nil, service.RevenueRange{}, false
	}
	start, end, err := parseDateRange(filter.StartDate, filter.EndDate)
	if err != nil {
		response.Error(c, err)
		return nil, service.RevenueRange{}, false
	}
	return &filter, service.RevenueRange{Category: filter.Category, StartDate: start, EndDate: end}, true
}

// List handles listing ledger entries (page-based, or cursor-based when
// cursor or limit is given)
func (h *RevenueHandler) List(c *gin.Context) {
	filter, rng, ok := h.bindRange(c)
	if !ok {
		return
	}

	cursor := &pagination.CursorParams{Cursor: filter.Cursor, Limit: filter.Limit}
	if pagination.IsCursorRequest(cursor) {
		result, err := h.revenueService.ListRevenueCursor(c.Request.Context(), cursor, rng)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.SuccessWithCursor(c, 200, "Revenue retrieved successfully", result)
		return
	}

	result, err := h.revenueService.ListRevenue(c.Request.Context(),
		pagination.Params(filter.Page, filter.PerPage), rng)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Revenue retrieved successfully", result)
}

// Summary totals the ledger per category
func (h *RevenueHandler) Summary(c *gin.Context) {
	_, rng, ok := h.bindRange(c)
	if !ok {
		return
	}

	summary, err := h.revenueService.Summary(c.Request.Context(), rng)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Revenue summary retrieved successfully", summary)
}
