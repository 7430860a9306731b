package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/innkeeper-api/internal/domain/entity"
	"github.com/sangkips/innkeeper-api/internal/domain/enum"
	domainRepo "github.com/sangkips/innkeeper-api/internal/domain/repository"
	"github.com/sangkips/innkeeper-api/pkg/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) domainRepo.BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(booking).Error
}

func (r *bookingRepository) CreateWithAdvance(ctx context.Context, booking *entity.Booking, payment *entity.Payment, revenue *entity.RevenueEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(booking).Error; err != nil {
			return err
		}
		return createPaymentAndRevenue(tx, booking, payment, revenue)
	})
}

func (r *bookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.db.WithContext(ctx).
		Scopes(PropertyScope(ctx)).
		Preload("Room").
		First(&booking, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &booking, err
}

func (r *bookingRepository) GetWithCharges(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.db.WithContext(ctx).
		Scopes(PropertyScope(ctx)).
		Preload("Room").
		Preload("FoodOrders", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("FoodOrders.Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("ExtraCharges", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("paid_at ASC")
		}).
		First(&booking, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &booking, err
}

func (r *bookingRepository) GetByBookingNo(ctx context.Context, bookingNo string) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.db.WithContext(ctx).Scopes(PropertyScope(ctx)).First(&booking, "booking_no = ?", bookingNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &booking, err
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(booking).Error
}

func (r *bookingRepository) List(ctx context.Context, params *domainRepo.BookingFilterParams) ([]entity.Booking, int64, error) {
	var bookings []entity.Booking
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Booking{}).Scopes(PropertyScope(ctx))

	if params.Search != "" {
		query = query.Where("LOWER(booking_no) LIKE LOWER(?) OR LOWER(guest_name) LIKE LOWER(?) OR guest_phone LIKE ?",
			likePattern(params.Search), likePattern(params.Search), likePattern(params.Search))
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.PaymentStatus != nil {
		query = query.Where("payment_status = ?", *params.PaymentStatus)
	}

	if params.RoomID != nil {
		query = query.Where("room_id = ?", *params.RoomID)
	}

	if params.StartDate != nil {
		query = query.Where("check_in >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("check_in <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "created_at"
	switch params.SortBy {
	case "check_in", "check_out", "booking_no", "guest_name", "total_amount":
		sortBy = params.SortBy
	}
	sortOrder := "DESC"
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Room").
		Order(sortBy + " " + sortOrder).
		Find(&bookings).Error

	return bookings, total, err
}

func (r *bookingRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status enum.PaymentStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Booking{}).
		Scopes(PropertyScope(ctx)).
		Where("id = ?", id).
		Update("payment_status", status).Error
}

func (r *bookingRepository) HasOverlap(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Booking{}).
		Scopes(PropertyScope(ctx)).
		Where("room_id = ? AND status = ?", roomID, enum.BookingStatusConfirmed).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn).
		Count(&count).Error
	return count > 0, err
}

func (r *bookingRepository) AddExtraCharge(ctx context.Context, charge *entity.ExtraCharge) error {
	return r.db.WithContext(ctx).Create(charge).Error
}

// SettlePayment applies the new advance only if the stored advance is still the
// one the caller read, so two concurrent payments cannot overwrite each other.
func (r *bookingRepository) SettlePayment(ctx context.Context, booking *entity.Booking, payment *entity.Payment, revenue *entity.RevenueEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		previous := booking.Advance - payment.Amount
		result := tx.Model(&entity.Booking{}).
			Where("id = ? AND advance = ? AND status = ?", booking.ID, previous, enum.BookingStatusConfirmed).
			Updates(map[string]interface{}{
				"advance":        booking.Advance,
				"payment_status": booking.PaymentStatus,
				"payment_method": booking.PaymentMethod,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainRepo.ErrStaleBooking
		}
		return createPaymentAndRevenue(tx, booking, payment, revenue)
	})
}

func createPaymentAndRevenue(tx *gorm.DB, booking *entity.Booking, payment *entity.Payment, revenue *entity.RevenueEntry) error {
	payment.BookingID = booking.ID
	payment.PropertyID = booking.PropertyID
	if err := tx.Create(payment).Error; err != nil {
		return err
	}

	revenue.PropertyID = booking.PropertyID
	revenue.BookingID = &booking.ID
	revenue.PaymentID = &payment.ID
	return tx.Create(revenue).Error
}
