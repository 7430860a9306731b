package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/innkeeper-api/internal/application/service"
	"github.com/sangkips/innkeeper-api/internal/domain/enum"
	"github.com/sangkips/innkeeper-api/internal/domain/pricing"
	"github.com/sangkips/innkeeper-api/internal/domain/repository"
	"github.com/sangkips/innkeeper-api/internal/presentation/http/dto/request"
	"github.com/sangkips/innkeeper-api/internal/presentation/http/dto/response"
	"github.com/sangkips/innkeeper-api/pkg/pagination"
)

// BookingHandler handles booking-related HTTP requests
type BookingHandler struct {
	bookingService *service.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// List handles listing bookings
func (h *BookingHandler) List(c *gin.Context) {
	var filter request.BookingFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.BookingFilterParams{
		Pagination: pagination.Params(filter.Page, filter.PerPage),
		Search:     filter.Search,
		SortBy:     filter.SortBy,
		SortOrder:  filter.SortOrder,
	}
	if filter.Status != nil {
		status := enum.BookingStatus(*filter.Status)
		params.Status = &status
	}
	if filter.PaymentStatus != nil {
		status := enum.PaymentStatus(*filter.PaymentStatus)
		params.PaymentStatus = &status
	}
	if filter.RoomID != "" {
		roomID, err := uuid.Parse(filter.RoomID)
		if err != nil {
			response.BadRequest(c, "Invalid room ID")
			return
		}
		params.RoomID = &roomID
	}

	start, end, err := parseDateRange(filter.StartDate, filter.EndDate)
	if err != nil {
		response.Error(c, err)
		return
	}
	params.StartDate, params.EndDate = start, end

	result, err := h.bookingService.ListBookings(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, http.StatusOK, "Bookings retrieved successfully", result)
}

// Get handles getting a booking with its charges
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	booking, err := h.bookingService.GetBooking(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Booking retrieved successfully", booking)
}

// GetByNumber handles looking a booking up by its booking number
func (h *BookingHandler) GetByNumber(c *gin.Context) {
	booking, err := h.bookingService.GetBookingByNumber(c.Request.Context(), c.Param("booking_no"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Booking retrieved successfully", booking)
}

// Create handles booking creation
// @Summary Create booking
// @Description Price a stay from the room's rates and store it, with an optional advance
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body request.CreateBookingRequest true "Booking"
// @Success 201 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req request.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	input := &service.CreateBookingInput{
		RoomID:        req.RoomID,
		GuestName:     req.GuestName,
		GuestPhone:    req.GuestPhone,
		GuestEmail:    req.GuestEmail,
		IDProof:       req.IDProof,
		Adults:        req.Adults,
		Children:      req.Children,
		ExtraBed:      req.ExtraBed,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		Advance:       req.Advance,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}
	if req.Rate != nil {
		input.Modifiers = &pricing.RateModifiers{
			BaseRate:        req.Rate.BaseRate,
			DiscountPercent: req.Rate.DiscountPercent,
			ExtraBedFee:     req.Rate.ExtraBedFee,
			TaxPercent:      req.Rate.TaxPercent,
		}
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Booking created successfully", booking)
}

// AddCharge adds a flat extra charge to a booking
func (h *BookingHandler) AddCharge(c *gin.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	var req request.ExtraChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	charge, err := h.bookingService.AddExtraCharge(c.Request.Context(), id, &service.AddExtraChargeInput{
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Charge added successfully", charge)
}

// Settlement returns the booking's current bill
func (h *BookingHandler) Settlement(c *gin.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	view, err := h.bookingService.GetSettlement(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Settlement retrieved successfully", view)
}

// Pay records a payment against a booking
// @Summary Settle payment
// @Description Record a payment, update the booking balance and append revenue in one step
// @Tags bookings
// @Accept json
// @Produce json
// @Param Idempotency-Key header string true "Client generated key"
// @Param request body request.PaymentRequest true "Payment"
// @Success 201 {object} response.APIResponse
// @Router /bookings/{id}/payments [post]
func (h *BookingHandler) Pay(c *gin.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	var req request.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	view, err := h.bookingService.SettlePayment(c.Request.Context(), id, &service.SettlePaymentInput{
		Amount:    req.Amount,
		Method:    req.Method,
		Reference: req.Reference,
		Category:  req.Category,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Payment recorded successfully", view)
}

// Cancel cancels a confirmed booking
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	booking, err := h.bookingService.CancelBooking(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Booking cancelled", booking)
}

// Checkout closes a fully paid booking
func (h *BookingHandler) Checkout(c *gin.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	booking, err := h.bookingService.CheckoutBooking(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Guest checked out", booking)
}
