package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/innkeeper-api/internal/domain/entity"
	"github.com/sangkips/innkeeper-api/pkg/pagination"
)

// FoodItemRepository defines the interface for food menu operations
type FoodItemRepository interface {
	Create(ctx context.Context, item *entity.FoodItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.FoodItem, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.FoodItem, error)
	Update(ctx context.Context, item *entity.FoodItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search, category string) ([]entity.FoodItem, int64, error)
}

// FoodOrderRepository defines the interface for food order operations
type FoodOrderRepository interface {
	// CreateWithStock inserts the order and decrements stock for every item in
	// one transaction. It returns the ids of food items without enough stock;
	// when that list is non-empty nothing was written.
	CreateWithStock(ctx context.Context, order *entity.FoodOrder) ([]uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.FoodOrder, error)
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]entity.FoodOrder, error)
}
