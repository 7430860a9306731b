package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/innkeeper-api/internal/domain/entity"
	domainRepo "github.com/sangkips/innkeeper-api/internal/domain/repository"
	"github.com/sangkips/innkeeper-api/pkg/pagination"
	"gorm.io/gorm"
)

type foodItemRepository struct {
	db *gorm.DB
}

// NewFoodItemRepository creates a new food item repository
func NewFoodItemRepository(db *gorm.DB) domainRepo.FoodItemRepository {
	return &foodItemRepository{db: db}
}

func (r *foodItemRepository) Create(ctx context.Context, item *entity.FoodItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *foodItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.FoodItem, error) {
	var item entity.FoodItem
	err := r.db.WithContext(ctx).Scopes(PropertyScope(ctx)).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *foodItemRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.FoodItem, error) {
	var items []entity.FoodItem
	if len(ids) == 0 {
		return items, nil
	}
	err := r.db.WithContext(ctx).Scopes(PropertyScope(ctx)).Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *foodItemRepository) Update(ctx context.Context, item *entity.FoodItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *foodItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(PropertyScope(ctx)).Delete(&entity.FoodItem{}, "id = ?", id).Error
}

func (r *foodItemRepository) List(ctx context.Context, params *pagination.PaginationParams, search, category string) ([]entity.FoodItem, int64, error) {
	var items []entity.FoodItem
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.FoodItem{}).Scopes(PropertyScope(ctx))
	if search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", likePattern(search))
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("category ASC, name ASC").
		Find(&items).Error

	return items, total, err
}

type foodOrderRepository struct {
	db *gorm.DB
}

// NewFoodOrderRepository creates a new food order repository
func NewFoodOrderRepository(db *gorm.DB) domainRepo.FoodOrderRepository {
	return &foodOrderRepository{db: db}
}

// CreateWithStock decrements stock for every ordered item in a single transaction.
// If any item has insufficient stock, the entire transaction is rolled back.
func (r *foodOrderRepository) CreateWithStock(ctx context.Context, order *entity.FoodOrder) ([]uuid.UUID, error) {
	if len(order.Items) == 0 {
		return nil, nil
	}

	// Same item ordered twice is decremented once for the combined quantity
	var ids []uuid.UUID
	decrements := make(map[uuid.UUID]int)
	for _, it := range order.Items {
		if _, seen := decrements[it.FoodItemID]; !seen {
			ids = append(ids, it.FoodItemID)
		}
		decrements[it.FoodItemID] += it.Quantity
	}

	var failedIDs []uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, id := range ids {
			amount := decrements[id]
			result := tx.Model(&entity.FoodItem{}).
				Where("id = ? AND property_id = ? AND stock >= ?", id, order.PropertyID, amount).
				Update("stock", gorm.Expr("stock - ?", amount))

			if result.Error != nil {
				return result.Error
			}

			if result.RowsAffected == 0 {
				failedIDs = append(failedIDs, id)
			}
		}

		if len(failedIDs) > 0 {
			return gorm.ErrInvalidTransaction
		}

		return tx.Create(order).Error
	})

	// Rolled back for insufficient stock: report the items, not the transaction error
	if errors.Is(err, gorm.ErrInvalidTransaction) && len(failedIDs) > 0 {
		return failedIDs, nil
	}

	return failedIDs, err
}

func (r *foodOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.FoodOrder, error) {
	var order entity.FoodOrder
	err := r.db.WithContext(ctx).
		Scopes(PropertyScope(ctx)).
		Preload("Items").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *foodOrderRepository) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]entity.FoodOrder, error) {
	var orders []entity.FoodOrder
	err := r.db.WithContext(ctx).
		Scopes(PropertyScope(ctx)).
		Preload("Items").
		Where("booking_id = ?", bookingID).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}
