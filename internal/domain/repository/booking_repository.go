package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/innkeeper-api/internal/domain/entity"
	"github.com/sangkips/innkeeper-api/internal/domain/enum"
	"github.com/sangkips/innkeeper-api/pkg/pagination"
)

// BookingRepository defines the interface for booking data operations.
// All reads are limited to the property of the session in ctx.
type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	// GetWithCharges loads the room, food orders with items, extra charges and payments
	GetWithCharges(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	GetByBookingNo(ctx context.Context, bookingNo string) (*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
	List(ctx context.Context, params *BookingFilterParams) ([]entity.Booking, int64, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status enum.PaymentStatus) error
	// HasOverlap reports whether another confirmed booking holds the room
	// for any night in [checkIn, checkOut)
	HasOverlap(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error)
	AddExtraCharge(ctx context.Context, charge *entity.ExtraCharge) error
	// SettlePayment writes the booking's new advance and status, the payment and
	// the revenue entry in one transaction
	SettlePayment(ctx context.Context, booking *entity.Booking, payment *entity.Payment, revenue *entity.RevenueEntry) error
	// CreateWithAdvance inserts a booking together with its first payment
	CreateWithAdvance(ctx context.Context, booking *entity.Booking, payment *entity.Payment, revenue *entity.RevenueEntry) error
}

// BookingFilterParams contains filtering parameters for booking queries
type BookingFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string
	Status        *enum.BookingStatus
	PaymentStatus *enum.PaymentStatus
	RoomID        *uuid.UUID
	StartDate     *time.Time
	EndDate       *time.Time
	SortBy        string
	SortOrder     string
}
