package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateFoodItemRequest represents a menu item creation request
type CreateFoodItemRequest struct {
	Name      string          `json:"name" binding:"required,min=2,max=255"`
	Category  string          `json:"category" binding:"omitempty,max=100"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock" binding:"min=0"`
	Available *bool           `json:"available"`
}

// UpdateFoodItemRequest represents a menu item update request
type UpdateFoodItemRequest struct {
	Name      *string          `json:"name" binding:"omitempty,min=2,max=255"`
	Category  *string          `json:"category" binding:"omitempty,max=100"`
	Price     *decimal.Decimal `json:"price"`
	Stock     *int             `json:"stock" binding:"omitempty,min=0"`
	Available *bool            `json:"available"`
}

// FoodOrderItemRequest is one line of a food order
type FoodOrderItemRequest struct {
	FoodItemID uuid.UUID `json:"food_item_id" binding:"required"`
	Quantity   int       `json:"quantity" binding:"required,min=1"`
}

// CreateFoodOrderRequest represents a food order charged to a booking
type CreateFoodOrderRequest struct {
	BookingID uuid.UUID              `json:"booking_id" binding:"required"`
	Items     []FoodOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}
