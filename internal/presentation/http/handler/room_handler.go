package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/innkeeper-api/internal/application/service"
	"github.com/sangkips/innkeeper-api/internal/domain/enum"
	"github.com/sangkips/innkeeper-api/internal/domain/repository"
	"github.com/sangkips/innkeeper-api/internal/presentation/http/dto/request"
	"github.com/sangkips/innkeeper-api/internal/presentation/http/dto/response"
	"github.com/sangkips/innkeeper-api/pkg/pagination"
)

// RoomHandler handles room-related HTTP requests
type RoomHandler struct {
	roomService *service.RoomService
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(roomService *service.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// List handles listing rooms
func (h *RoomHandler) List(c *gin.Context) {
	var filter request.RoomFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.RoomFilterParams{
		Pagination: pagination.Params(filter.Page, filter.PerPage),
		Search:     filter.Search,
	}
	if filter.Status != nil {
		status := enum.RoomStatus(*filter.Status)
		params.Status = &status
	}

	result, err := h.roomService.ListRooms(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Rooms retrieved successfully", result)
}

// Get handles getting a room by ID
func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "room")
	if !ok {
		return
	}

	room, err := h.roomService.GetRoom(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Room retrieved successfully", room)
}

// Create handles room creation
func (h *RoomHandler) Create(c *gin.Context) {
	var req request.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	room, err := h.roomService.CreateRoom(c.Request.Context(), &service.RoomInput{
		Number:        &req.Number,
		Type:          &req.Type,
		Description:   &req.Description,
		Capacity:      req.Capacity,
		Price:         &req.Price,
		Discount:      &req.Discount,
		ExtraBedPrice: &req.ExtraBedPrice,
		TaxGST:        &req.TaxGST,
		Status:        req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Room created successfully", room)
}

// Update handles room updates
func (h *RoomHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "room")
	if !ok {
		return
	}

	var req request.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	room, err := h.roomService.UpdateRoom(c.Request.Context(), id, &service.RoomInput{
		Number:        req.Number,
		Type:          req.Type,
		Description:   req.Description,
		Capacity:      req.Capacity,
		Price:         req.Price,
		Discount:      req.Discount,
		ExtraBedPrice: req.ExtraBedPrice,
		TaxGST:        req.TaxGST,
		Status:        req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Room updated successfully", room)
}

// Delete handles room deletion
func (h *RoomHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "room")
	if !ok {
		return
	}

	if err := h.roomService.DeleteRoom(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Room deleted successfully", nil)
}

// Quote prices a stay for the booking form
func (h *RoomHandler) Quote(c *gin.Context) {
	id, ok := pathID(c, "room")
	if !ok {
		return
	}

	var req request.QuoteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	quote, err := h.roomService.QuoteRoom(c.Request.Context(), id, req.CheckIn, req.CheckOut, req.ExtraBed)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Quote calculated successfully", quote)
}
