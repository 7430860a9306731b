package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/innkeeper-api/internal/domain/entity"
	"github.com/sangkips/innkeeper-api/internal/domain/enum"
	"github.com/sangkips/innkeeper-api/internal/domain/pricing"
	"github.com/sangkips/innkeeper-api/internal/domain/repository"
	"github.com/sangkips/innkeeper-api/internal/infrastructure/cache"
	"github.com/sangkips/innkeeper-api/pkg/apperror"
	"github.com/sangkips/innkeeper-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// RoomService handles room catalog operations
type RoomService struct {
	roomRepo repository.RoomRepository
	cache    cache.RoomCache
}

// NewRoomService creates a new room service
func NewRoomService(roomRepo repository.RoomRepository, roomCache cache.RoomCache) *RoomService {
	if roomCache == nil {
		roomCache = cache.NopRoomCache{}
	}
	return &RoomService{
		roomRepo: roomRepo,
		cache:    roomCache,
	}
}

// RoomInput represents the editable fields of a room. Nil leaves a field
// unchanged on update.
type RoomInput struct {
	Number        *string
	Type          *string
	Description   *string
	Capacity      *int
	Price         *decimal.Decimal
	Discount      *decimal.Decimal
	ExtraBedPrice *decimal.Decimal
	TaxGST        *decimal.Decimal
	Status        *enum.RoomStatus
}

func (in *RoomInput) apply(room *entity.Room) {
	if in.Number != nil {
		room.Number = *in.Number
	}
	if in.Type != nil {
		room.Type = *in.Type
	}
	if in.Description != nil {
		room.Description = *in.Description
	}
	if in.Capacity != nil {
		room.Capacity = *in.Capacity
	}
	if in.Price != nil {
		room.Price = pricing.ToMinor(*in.Price)
	}
	if in.Discount != nil {
		room.Discount = in.Discount.InexactFloat64()
	}
	if in.ExtraBedPrice != nil {
		room.ExtraBedPrice = pricing.ToMinor(*in.ExtraBedPrice)
	}
	if in.TaxGST != nil {
		room.TaxGST = in.TaxGST.InexactFloat64()
	}
	if in.Status != nil {
		room.Status = *in.Status
	}
}

func validateRoom(room *entity.Room) error {
	var fieldErrors []apperror.FieldError
	if room.Number == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "number", Message: "is required"})
	}
	if room.Price < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "must not be negative"})
	}
	if room.Discount < 0 || room.Discount > 100 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "discount", Message: "must be between 0 and 100"})
	}
	if room.TaxGST < 0 || room.TaxGST > 100 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "tax_gst", Message: "must be between 0 and 100"})
	}
	if room.ExtraBedPrice < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "extra_bed_price", Message: "must not be negative"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// CreateRoom adds a room to the current property. Admin only.
func (s *RoomService) CreateRoom(ctx context.Context, input *RoomInput) (*entity.Room, error) {
	sess, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	room := &entity.Room{PropertyID: sess.PropertyID, Capacity: 2}
	input.apply(room)
	if err := validateRoom(room); err != nil {
		return nil, err
	}

	existing, err := s.roomRepo.GetByNumber(ctx, room.Number)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrRoomNumberTaken
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// GetRoom returns a room of the current property, from cache when possible
func (s *RoomService) GetRoom(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	sess, err := currentSession(ctx)
	if err != nil {
		return nil, err
	}

	if room, ok := s.cache.Get(ctx, sess.PropertyID, id); ok {
		return room, nil
	}

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperror.NewNotFoundError("Room")
	}

	s.cache.Set(ctx, room)
	return room, nil
}

// UpdateRoom edits a room. Existing bookings keep the modifiers they copied.
func (s *RoomService) UpdateRoom(ctx context.Context, id uuid.UUID, input *RoomInput) (*entity.Room, error) {
	sess, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperror.NewNotFoundError("Room")
	}

	oldNumber := room.Number
	input.apply(room)
	if err := validateRoom(room); err != nil {
		return nil, err
	}

	if room.Number != oldNumber {
		existing, err := s.roomRepo.GetByNumber(ctx, room.Number)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.ErrRoomNumberTaken
		}
	}

	if err := s.roomRepo.Update(ctx, room); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, sess.PropertyID, id)
	return room, nil
}

// DeleteRoom soft-deletes a room. Admin only.
func (s *RoomService) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	sess, err := requireAdmin(ctx)
	if err != nil {
		return err
	}

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if room == nil {
		return apperror.NewNotFoundError("Room")
	}

	if err := s.roomRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, sess.PropertyID, id)
	return nil
}

// ListRooms lists the rooms of the current property
func (s *RoomService) ListRooms(ctx context.Context, params *repository.RoomFilterParams) (*pagination.PaginatedResult[entity.Room], error) {
	if _, err := currentSession(ctx); err != nil {
		return nil, err
	}
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	rooms, total, err := s.roomRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPage(rooms, params.Pagination, total), nil
}

// QuoteRoom prices a stay in a room with the room's current modifiers
func (s *RoomService) QuoteRoom(ctx context.Context, id uuid.UUID, checkIn, checkOut string, extraBed bool) (*pricing.Quote, error) {
	room, err := s.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	quote := pricing.QuoteStay(pricing.NewStayPeriod(checkIn, checkOut).CalendarDates(), room.RateModifiers(extraBed))
	return &quote, nil
}
