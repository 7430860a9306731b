package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/innkeeper-api/internal/domain/entity"
	"github.com/sangkips/innkeeper-api/internal/domain/enum"
	"github.com/sangkips/innkeeper-api/internal/domain/pricing"
	"github.com/sangkips/innkeeper-api/internal/domain/repository"
	"github.com/sangkips/innkeeper-api/pkg/apperror"
	"github.com/sangkips/innkeeper-api/pkg/pagination"
	"github.com/sangkips/innkeeper-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// BookingService handles bookings, their charges and their settlement
type BookingService struct {
	bookingRepo  repository.BookingRepository
	propertyRepo repository.PropertyRepository
	rooms        *RoomService
	now          func() time.Time
}

// NewBookingService creates a new booking service
func NewBookingService(
	bookingRepo repository.BookingRepository,
	propertyRepo repository.PropertyRepository,
	rooms *RoomService,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		rooms:        rooms,
		now:          time.Now,
	}
}

// CreateBookingInput represents the create booking input
type CreateBookingInput struct {
	RoomID     uuid.UUID
	GuestName  string
	GuestPhone string
	GuestEmail string
	IDProof    string
	Adults     int
	Children   int
	ExtraBed   bool
	CheckIn    string
	CheckOut   string
	// Modifiers overrides the room's pricing for this booking only
	Modifiers     *pricing.RateModifiers
	Advance       decimal.Decimal
	PaymentMethod string
	Notes         string
}

// CreateBooking prices the stay from the room's modifiers (copied into the
// booking) and stores it. A positive advance is recorded as the first payment.
func (s *BookingService) CreateBooking(ctx context.Context, input *CreateBookingInput) (*entity.Booking, error) {
	sess, err := currentSession(ctx)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.GuestName) == "" {
		return nil, apperror.NewFieldError("guest_name", "is required")
	}
	if input.Advance.IsNegative() {
		return nil, apperror.NewFieldError("advance", "must not be negative")
	}

	room, err := s.rooms.GetRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}
	if room.Status == enum.RoomStatusMaintenance {
		return nil, apperror.ErrRoomMaintenance
	}

	// Bookings are stored as calendar dates
	period := pricing.NewStayPeriod(input.CheckIn, input.CheckOut).CalendarDates()
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	modifiers := room.RateModifiers(input.ExtraBed)
	if input.Modifiers != nil {
		modifiers = *input.Modifiers
	}

	quote := pricing.QuoteStay(period, modifiers)
	if quote.Nights <= 0 {
		return nil, apperror.NewFieldError("check_out", "stay must be at least one night")
	}
	if !quote.NightlyRate.Valid {
		return nil, apperror.ErrNoNightlyRate
	}
	if input.Advance.GreaterThan(quote.TotalAmount) {
		return nil, apperror.NewFieldError("advance", fmt.Sprintf("exceeds the stay total of %s", quote.TotalAmount.StringFixed(2)))
	}

	overlap, err := s.bookingRepo.HasOverlap(ctx, room.ID, period.CheckIn, period.CheckOut)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, apperror.ErrRoomBooked
	}

	prefix := ""
	if property, err := s.propertyRepo.GetByID(ctx, sess.PropertyID); err == nil && property != nil {
		prefix = property.Settings.BookingPrefix
	}

	booking := &entity.Booking{
		PropertyID:    sess.PropertyID,
		RoomID:        room.ID,
		BookingNo:     utils.GenerateBookingNo(prefix, s.now()),
		GuestName:     strings.TrimSpace(input.GuestName),
		GuestPhone:    input.GuestPhone,
		GuestEmail:    input.GuestEmail,
		IDProof:       input.IDProof,
		Adults:        max(input.Adults, 1),
		Children:      max(input.Children, 0),
		ExtraBed:      input.ExtraBed,
		CheckIn:       period.CheckIn,
		CheckOut:      period.CheckOut,
		Nights:        quote.Nights,
		NightlyRate:   pricing.ToMinor(quote.NightlyRate.Decimal),
		TotalAmount:   pricing.ToMinor(quote.TotalAmount),
		PaymentMethod: input.PaymentMethod,
		Status:        enum.BookingStatusConfirmed,
		Notes:         input.Notes,
		CreatedBy:     sess.UserID,
		Room:          room,
	}
	booking.ApplyModifiers(modifiers)

	if !input.Advance.IsPositive() {
		booking.PaymentStatus = pricing.ClassifyPayment(quote.TotalAmount, decimal.Zero)
		if err := s.bookingRepo.Create(ctx, booking); err != nil {
			return nil, err
		}
		return booking, nil
	}

	if input.PaymentMethod == "" {
		return nil, apperror.NewFieldError("payment_method", "is required with an advance")
	}
	booking.Advance = pricing.ToMinor(input.Advance)
	booking.PaymentStatus = booking.Settlement().PaymentStatus

	payment := &entity.Payment{
		Amount:     booking.Advance,
		Method:     input.PaymentMethod,
		ReceivedBy: sess.UserID,
		PaidAt:     s.now(),
	}
	revenue := &entity.RevenueEntry{
		Source:      entity.RevenueSourceAdvance,
		Category:    entity.RevenueCategoryRoom,
		Amount:      booking.Advance,
		Description: "Advance for " + booking.BookingNo,
		RecordedAt:  payment.PaidAt,
	}
	if err := s.bookingRepo.CreateWithAdvance(ctx, booking, payment, revenue); err != nil {
		return nil, err
	}
	booking.Payments = []entity.Payment{*payment}
	return booking, nil
}

func validatePeriod(period pricing.StayPeriod) error {
	var fieldErrors []apperror.FieldError
	if period.CheckIn.IsZero() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "check_in", Message: "must be a date (YYYY-MM-DD)"})
	}
	if period.CheckOut.IsZero() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "check_out", Message: "must be a date (YYYY-MM-DD)"})
	}
	if len(fieldErrors) == 0 && !period.CheckOut.After(period.CheckIn) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "check_out", Message: "must be after check_in"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// GetBooking returns a booking with all its charges
func (s *BookingService) GetBooking(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	if _, err := currentSession(ctx); err != nil {
		return nil, err
	}
	booking, err := s.bookingRepo.GetWithCharges(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperror.NewNotFoundError("Booking")
	}
	return booking, nil
}

// GetBookingByNumber looks a booking up by the number printed on its receipt
func (s *BookingService) GetBookingByNumber(ctx context.Context, bookingNo string) (*entity.Booking, error) {
	if _, err := currentSession(ctx); err != nil {
		return nil, err
	}
	found, err := s.bookingRepo.GetByBookingNo(ctx, strings.TrimSpace(bookingNo))
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, apperror.NewNotFoundError("Booking")
	}
	return s.GetBooking(ctx, found.ID)
}

// findBooking loads a booking and its room without the charges
func (s *BookingService) findBooking(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	if _, err := currentSession(ctx); err != nil {
		return nil, err
	}
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperror.NewNotFoundError("Booking")
	}
	return booking, nil
}

// ListBookings lists bookings of the current property
func (s *BookingService) ListBookings(ctx context.Context, params *repository.BookingFilterParams) (*pagination.PaginatedResult[entity.Booking], error) {
	if _, err := currentSession(ctx); err != nil {
		return nil, err
	}
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	bookings, total, err := s.bookingRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPage(bookings, params.Pagination, total), nil
}

// getOpenBooking loads a booking that still accepts charges and payments
func (s *BookingService) getOpenBooking(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !booking.IsActive() {
		return nil, apperror.ErrBookingClosed
	}
	return booking, nil
}

// AddExtraChargeInput represents a flat charge on a booking
type AddExtraChargeInput struct {
	Description string
	Amount      decimal.Decimal
}

// AddExtraCharge appends a flat charge and refreshes the payment status
func (s *BookingService) AddExtraCharge(ctx context.Context, bookingID uuid.UUID, input *AddExtraChargeInput) (*entity.ExtraCharge, error) {
	sess, err := currentSession(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, apperror.NewFieldError("description", "is required")
	}
	if !input.Amount.IsPositive() {
		return nil, apperror.NewFieldError("amount", "must be greater than 0")
	}

	booking, err := s.getOpenBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	charge := &entity.ExtraCharge{
		PropertyID:  sess.PropertyID,
		BookingID:   booking.ID,
		Description: strings.TrimSpace(input.Description),
		Amount:      pricing.ToMinor(input.Amount),
		CreatedBy:   sess.UserID,
	}
	if err := s.bookingRepo.AddExtraCharge(ctx, charge); err != nil {
		return nil, err
	}

	if err := s.RefreshPaymentStatus(ctx, booking.ID); err != nil {
		return nil, err
	}
	return charge, nil
}

// RefreshPaymentStatus recomputes the stored payment status after the
// booking's charges changed
func (s *BookingService) RefreshPaymentStatus(ctx context.Context, bookingID uuid.UUID) error {
	booking, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	status := booking.Settlement().PaymentStatus
	if status == booking.PaymentStatus {
		return nil
	}
	return s.bookingRepo.UpdatePaymentStatus(ctx, booking.ID, status)
}

// SettlementView is a booking together with its computed settlement
type SettlementView struct {
	Booking    *entity.Booking    `json:"booking"`
	Settlement pricing.Settlement `json:"settlement"`
	Payment    *entity.Payment    `json:"payment,omitempty"`
}

// GetSettlement recomputes the settlement from the stored line items
func (s *BookingService) GetSettlement(ctx context.Context, bookingID uuid.UUID) (*SettlementView, error) {
	booking, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return &SettlementView{Booking: booking, Settlement: booking.Settlement()}, nil
}

// SettlePaymentInput represents a payment against a booking
type SettlePaymentInput struct {
	Amount    decimal.Decimal
	Method    string
	Reference string
	Category  string
}

// SettlePayment records a payment. The booking's advance and status, the
// payment row and the revenue entry are written in one transaction.
func (s *BookingService) SettlePayment(ctx context.Context, bookingID uuid.UUID, input *SettlePaymentInput) (*SettlementView, error) {
	sess, err := currentSession(ctx)
	if err != nil {
		return nil, err
	}
	if !input.Amount.IsPositive() {
		return nil, apperror.NewFieldError("amount", "must be greater than 0")
	}
	if input.Method == "" {
		return nil, apperror.NewFieldError("method", "is required")
	}
	category := input.Category
	if category == "" {
		category = entity.RevenueCategoryRoom
	}
	if !entity.IsRevenueCategory(category) {
		return nil, apperror.NewFieldError("category", "must be room, food or other")
	}

	booking, err := s.getOpenBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	before := booking.Settlement()
	if !before.BalanceDue.IsPositive() {
		return nil, apperror.ErrAlreadySettled
	}
	if input.Amount.GreaterThan(before.BalanceDue) {
		return nil, apperror.NewFieldError("amount", fmt.Sprintf("exceeds balance due of %s", before.BalanceDue.StringFixed(2)))
	}

	amount := pricing.ToMinor(input.Amount)
	booking.Advance += amount
	booking.PaymentMethod = input.Method
	booking.PaymentStatus = pricing.ClassifyPayment(before.Subtotal, pricing.FromMinor(booking.Advance))

	payment := &entity.Payment{
		Amount:     amount,
		Method:     input.Method,
		Reference:  input.Reference,
		ReceivedBy: sess.UserID,
		PaidAt:     s.now(),
	}
	revenue := &entity.RevenueEntry{
		Source:      entity.RevenueSourceSettlement,
		Category:    category,
		Amount:      amount,
		Description: "Payment for " + booking.BookingNo,
		RecordedAt:  payment.PaidAt,
	}

	if err := s.bookingRepo.SettlePayment(ctx, booking, payment, revenue); err != nil {
		if errors.Is(err, repository.ErrStaleBooking) {
			return nil, apperror.ErrPaymentRace
		}
		return nil, err
	}

	booking.Payments = append(booking.Payments, *payment)
	return &SettlementView{Booking: booking, Settlement: booking.Settlement(), Payment: payment}, nil
}

// CancelBooking cancels a confirmed booking. Recorded payments stay in the ledger.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID uuid.UUID) (*entity.Booking, error) {
	booking, err := s.getOpenBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	booking.Status = enum.BookingStatusCancelled
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// CheckoutBooking closes a booking once nothing is owed
func (s *BookingService) CheckoutBooking(ctx context.Context, bookingID uuid.UUID) (*entity.Booking, error) {
	booking, err := s.getOpenBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	settlement := booking.Settlement()
	if settlement.BalanceDue.IsPositive() {
		return nil, apperror.NewConflictError(fmt.Sprintf("Balance of %s is still due", settlement.BalanceDue.StringFixed(2)))
	}

	now := s.now()
	booking.Status = enum.BookingStatusCheckedOut
	booking.CheckedOutAt = &now
	booking.PaymentStatus = settlement.PaymentStatus
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}
