package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/innkeeper-api/internal/application/service"
	"github.com/sangkips/innkeeper-api/internal/presentation/http/dto/request"
	"github.com/sangkips/innkeeper-api/internal/presentation/http/dto/response"
	"github.com/sangkips/innkeeper-api/pkg/pagination"
)

// FoodHandler handles the food menu and room-service orders
type FoodHandler struct {
	foodService *service.FoodService
}

// NewFoodHandler creates a new food handler
func NewFoodHandler(foodService *service.FoodService) *FoodHandler {
	return &FoodHandler{foodService: foodService}
}

// ListItems handles listing the menu
func (h *FoodHandler) ListItems(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.foodService.ListFoodItems(c.Request.Context(), &params, c.Query("search"), c.Query("category"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Food items retrieved successfully", result)
}

// GetItem handles getting a menu item
func (h *FoodHandler) GetItem(c *gin.Context) {
	id, ok := pathID(c, "food item")
	if !ok {
		return
	}

	item, err := h.foodService.GetFoodItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Food item retrieved successfully", item)
}

// CreateItem handles menu item creation
func (h *FoodHandler) CreateItem(c *gin.Context) {
	var req request.CreateFoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	item, err := h.foodService.CreateFoodItem(c.Request.Context(), &service.FoodItemInput{
		Name:      &req.Name,
		Category:  &req.Category,
		Price:     &req.Price,
		Stock:     &req.Stock,
		Available: req.Available,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Food item created successfully", item)
}

// UpdateItem handles menu item updates
func (h *FoodHandler) UpdateItem(c *gin.Context) {
	id, ok := pathID(c, "food item")
	if !ok {
		return
	}

	var req request.UpdateFoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	item, err := h.foodService.UpdateFoodItem(c.Request.Context(), id, &service.FoodItemInput{
		Name:      req.Name,
		Category:  req.Category,
		Price:     req.Price,
		Stock:     req.Stock,
		Available: req.Available,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Food item updated successfully", item)
}

// DeleteItem handles menu item deletion
func (h *FoodHandler) DeleteItem(c *gin.Context) {
	id, ok := pathID(c, "food item")
	if !ok {
		return
	}

	if err := h.foodService.DeleteFoodItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Food item deleted successfully", nil)
}

// CreateOrder charges a food order to a booking
func (h *FoodHandler) CreateOrder(c *gin.Context) {
	var req request.CreateFoodOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	lines := make([]service.OrderLineInput, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, service.OrderLineInput{FoodItemID: it.FoodItemID, Quantity: it.Quantity})
	}

	order, err := h.foodService.CreateOrder(c.Request.Context(), &service.CreateFoodOrderInput{
		BookingID: req.BookingID,
		Items:     lines,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Food order created successfully", order)
}

// GetOrder returns a single food order
func (h *FoodHandler) GetOrder(c *gin.Context) {
	id, ok := pathID(c, "food order")
	if !ok {
		return
	}

	order, err := h.foodService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Food order retrieved successfully", order)
}

// ListBookingOrders lists the food orders of a booking
func (h *FoodHandler) ListBookingOrders(c *gin.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	orders, err := h.foodService.ListOrders(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Food orders retrieved successfully", orders)
}
