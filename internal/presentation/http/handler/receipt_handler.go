package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/innkeeper-api/internal/application/service"
	"github.com/sangkips/innkeeper-api/internal/presentation/http/dto/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReceiptHandler handles guest bills and the receipt printer.
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler.
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// GetReceipt returns the bill rows of a booking.
func (h *ReceiptHandler) GetReceipt(c *gin.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	receipt, err := h.receiptService.BuildReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt retrieved successfully", receipt)
}

// ExportReceipt downloads the bill as a spreadsheet.
func (h *ReceiptHandler) ExportReceipt(c *gin.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	data, filename, err := h.receiptService.ExportReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, xlsxContentType, filename, data)
}

// PrintReceipt sends the bill to the thermal printer.
func (h *ReceiptHandler) PrintReceipt(c *gin.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	receipt, err := h.receiptService.PrintReceipt(c.Request.Context(), id)
	if err != nil {
		// If receipt was built but printing failed, return receipt with warning
		if receipt != nil {
			response.OK(c, "Receipt generated but printing failed", gin.H{
				"receipt": receipt,
				"warning": err.Error(),
			})
			return
		}
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt printed successfully", gin.H{
		"receipt": receipt,
	})
}

// PrinterStatus returns the current printer connection status.
func (h *ReceiptHandler) PrinterStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.receiptService.GetStatus(c.Request.Context()))
}
