package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/innkeeper-api/internal/domain/entity"
	"github.com/sangkips/innkeeper-api/internal/domain/pricing"
	"github.com/sangkips/innkeeper-api/internal/domain/repository"
	"github.com/sangkips/innkeeper-api/pkg/apperror"
	"github.com/sangkips/innkeeper-api/pkg/pagination"
	"github.com/sangkips/innkeeper-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// FoodService handles the food menu and room-service orders
type FoodService struct {
	itemRepo  repository.FoodItemRepository
	orderRepo repository.FoodOrderRepository
	bookings  *BookingService
}

// NewFoodService creates a new food service
func NewFoodService(
	itemRepo repository.FoodItemRepository,
	orderRepo repository.FoodOrderRepository,
	bookings *BookingService,
) *FoodService {
	return &FoodService{
		itemRepo:  itemRepo,
		orderRepo: orderRepo,
		bookings:  bookings,
	}
}

// FoodItemInput represents the editable fields of a food item
type FoodItemInput struct {
	Name      *string
	Category  *string
	Price     *decimal.Decimal
	Stock     *int
	Available *bool
}

func (in *FoodItemInput) apply(item *entity.FoodItem) {
	if in.Name != nil {
		item.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		item.Category = strings.TrimSpace(*in.Category)
	}
	if in.Price != nil {
		item.Price = pricing.ToMinor(*in.Price)
	}
	if in.Stock != nil {
		item.Stock = *in.Stock
	}
	if in.Available != nil {
		item.Available = *in.Available
	}
}

func validateFoodItem(item *entity.FoodItem) error {
	var fieldErrors []apperror.FieldError
	if item.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "is required"})
	}
	if item.Price < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "must not be negative"})
	}
	if item.Stock < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "stock", Message: "must not be negative"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// CreateFoodItem adds an item to the menu
func (s *FoodService) CreateFoodItem(ctx context.Context, input *FoodItemInput) (*entity.FoodItem, error) {
	sess, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	item := &entity.FoodItem{PropertyID: sess.PropertyID, Available: true}
	input.apply(item)
	if err := validateFoodItem(item); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetFoodItem returns a food item by id
func (s *FoodService) GetFoodItem(ctx context.Context, id uuid.UUID) (*entity.FoodItem, error) {
	if _, err := currentSession(ctx); err != nil {
		return nil, err
	}
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Food item")
	}
	return item, nil
}

// UpdateFoodItem edits a food item. Past orders keep their snapshot prices.
func (s *FoodService) UpdateFoodItem(ctx context.Context, id uuid.UUID, input *FoodItemInput) (*entity.FoodItem, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	item, err := s.GetFoodItem(ctx, id)
	if err != nil {
		return nil, err
	}

	input.apply(item)
	if err := validateFoodItem(item); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteFoodItem removes a food item from the menu
func (s *FoodService) DeleteFoodItem(ctx context.Context, id uuid.UUID) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}
	if _, err := s.GetFoodItem(ctx, id); err != nil {
		return err
	}
	return s.itemRepo.Delete(ctx, id)
}

// ListFoodItems lists the menu of the current property
func (s *FoodService) ListFoodItems(ctx context.Context, params *pagination.PaginationParams, search, category string) (*pagination.PaginatedResult[entity.FoodItem], error) {
	if _, err := currentSession(ctx); err != nil {
		return nil, err
	}
	if params == nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()

	items, total, err := s.itemRepo.List(ctx, params, search, category)
	if err != nil {
		return nil, err
	}
	return pagination.NewPage(items, params, total), nil
}

// OrderLineInput is one requested menu item
type OrderLineInput struct {
	FoodItemID uuid.UUID
	Quantity   int
}

// CreateFoodOrderInput represents a food order against a booking
type CreateFoodOrderInput struct {
	BookingID uuid.UUID
	Items     []OrderLineInput
}

// CreateOrder prices the requested items from the live menu and charges them
// to the booking. Stock for the whole order is taken at once or not at all.
func (s *FoodService) CreateOrder(ctx context.Context, input *CreateFoodOrderInput) (*entity.FoodOrder, error) {
	sess, err := currentSession(ctx)
	if err != nil {
		return nil, err
	}
	if len(input.Items) == 0 {
		return nil, apperror.NewFieldError("items", "at least one item is required")
	}

	ids := make([]uuid.UUID, 0, len(input.Items))
	for i, line := range input.Items {
		if line.Quantity < 1 {
			return nil, apperror.NewFieldError(fmt.Sprintf("items[%d].quantity", i), "must be at least 1")
		}
		ids = append(ids, line.FoodItemID)
	}

	booking, err := s.bookings.getOpenBooking(ctx, input.BookingID)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	menu := make(map[uuid.UUID]entity.FoodItem, len(items))
	for _, item := range items {
		menu[item.ID] = item
	}

	order := &entity.FoodOrder{
		PropertyID: sess.PropertyID,
		BookingID:  booking.ID,
		OrderNo:    utils.GenerateOrderNo(),
		CreatedBy:  sess.UserID,
	}
	for _, line := range input.Items {
		item, ok := menu[line.FoodItemID]
		if !ok {
			return nil, apperror.NewNotFoundError("Food item")
		}
		if !item.Available {
			return nil, apperror.NewUnprocessableError(fmt.Sprintf("%s is not available", item.Name))
		}
		total := item.Price * int64(line.Quantity)
		order.Items = append(order.Items, entity.FoodOrderItem{
			FoodItemID: item.ID,
			Name:       item.Name,
			Quantity:   line.Quantity,
			UnitPrice:  item.Price,
			Total:      total,
		})
		order.Total += total
	}

	failedIDs, err := s.orderRepo.CreateWithStock(ctx, order)
	if err != nil {
		return nil, err
	}
	if len(failedIDs) > 0 {
		return nil, insufficientStockError(failedIDs, menu)
	}

	if err := s.bookings.RefreshPaymentStatus(ctx, booking.ID); err != nil {
		return nil, err
	}
	return order, nil
}

func insufficientStockError(failedIDs []uuid.UUID, menu map[uuid.UUID]entity.FoodItem) *apperror.AppError {
	names := make([]string, 0, len(failedIDs))
	fieldErrors := make([]apperror.FieldError, 0, len(failedIDs))
	for _, id := range failedIDs {
		item := menu[id]
		names = append(names, item.Name)
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   id.String(),
			Message: fmt.Sprintf("only %d of %s left", item.Stock, item.Name),
		})
	}
	err := apperror.NewUnprocessableError("Insufficient stock for " + strings.Join(names, ", "))
	err.Errors = fieldErrors
	return err
}

// ListOrders lists the food orders of a booking
func (s *FoodService) ListOrders(ctx context.Context, bookingID uuid.UUID) ([]entity.FoodOrder, error) {
	if _, err := s.bookings.findBooking(ctx, bookingID); err != nil {
		return nil, err
	}
	return s.orderRepo.ListByBooking(ctx, bookingID)
}

// GetOrder returns a food order with its items
func (s *FoodService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.FoodOrder, error) {
	if _, err := currentSession(ctx); err != nil {
		return nil, err
	}
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Food order")
	}
	return order, nil
}
