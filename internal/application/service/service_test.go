package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/innkeeper-api/internal/domain/entity"
	"github.com/sangkips/innkeeper-api/internal/domain/session"
	"github.com/sangkips/innkeeper-api/internal/infrastructure/cache"
	"github.com/sangkips/innkeeper-api/internal/infrastructure/database"
	infraRepo "github.com/sangkips/innkeeper-api/internal/infrastructure/repository"
	"github.com/sangkips/innkeeper-api/pkg/apperror"
	"github.com/sangkips/innkeeper-api/pkg/printer"
	"github.com/sangkips/innkeeper-api/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db       *gorm.DB
	property *entity.Property
	admin    *entity.User
	ctx      context.Context
	staffCtx context.Context

	auth     *AuthService
	settings *SettingsService
	rooms    *RoomService
	bookings *BookingService
	food     *FoodService
	revenue  *RevenueService
	receipts *ReceiptService
	printer  *recordingPrinter
}

type recordingPrinter struct {
	printed [][]byte
	err     error
}

func (p *recordingPrinter) Print(_ context.Context, data []byte) error {
	if p.err != nil {
		return p.err
	}
	p.printed = append(p.printed, data)
	return nil
}

func (p *recordingPrinter) IsConnected(context.Context) bool { return p.err == nil }

func (p *recordingPrinter) Type() string { return "network" }

var _ printer.Printer = (*recordingPrinter)(nil)

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.NewSQLiteDB(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	property := &entity.Property{Name: "Sea View", Address: "1 Beach Road", Phone: "0832 555 0101", GSTIN: "30ABCDE1234F1Z5"}
	require.NoError(t, db.Create(property).Error)

	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	admin := &entity.User{PropertyID: property.ID, FirstName: "Asha", LastName: "Naik", Email: "asha@seaview.in", Password: hash, Role: session.RoleAdmin}
	require.NoError(t, db.Create(admin).Error)

	staff := &entity.User{PropertyID: property.ID, FirstName: "Ravi", Email: "ravi@seaview.in", Password: hash, Role: session.RoleStaff}
	require.NoError(t, db.Create(staff).Error)

	propertyRepo := infraRepo.NewPropertyRepository(db)
	userRepo := infraRepo.NewUserRepository(db)
	bookingRepo := infraRepo.NewBookingRepository(db)

	env := &testEnv{
		db:       db,
		property: property,
		admin:    admin,
		ctx: session.WithSession(context.Background(), session.Session{
			UserID: admin.ID, PropertyID: property.ID, Email: admin.Email, Role: admin.Role,
		}),
		staffCtx: session.WithSession(context.Background(), session.Session{
			UserID: staff.ID, PropertyID: property.ID, Email: staff.Email, Role: staff.Role,
		}),
		printer: &recordingPrinter{},
	}

	env.auth = NewAuthService(userRepo, utils.NewJWTManager("test-secret", time.Hour))
	env.settings = NewSettingsService(propertyRepo)
	env.rooms = NewRoomService(infraRepo.NewRoomRepository(db), cache.NopRoomCache{})
	env.bookings = NewBookingService(bookingRepo, propertyRepo, env.rooms)
	env.bookings.now = func() time.Time { return time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC) }
	env.food = NewFoodService(infraRepo.NewFoodItemRepository(db), infraRepo.NewFoodOrderRepository(db), env.bookings)
	env.revenue = NewRevenueService(infraRepo.NewRevenueRepository(db))
	env.receipts = NewReceiptService(env.bookings, propertyRepo, userRepo, env.printer, 32)
	return env
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strPtr(s string) *string { return &s }

// deluxeRoom is priced at 5000 less 10%, plus 18% tax, plus a 1000 extra bed: 6310 a night.
func (e *testEnv) deluxeRoom(t *testing.T, number string) *entity.Room {
	t.Helper()
	room, err := e.rooms.CreateRoom(e.ctx, &RoomInput{
		Number:        strPtr(number),
		Type:          strPtr("Deluxe"),
		Price:         dec("5000"),
		Discount:      dec("10"),
		ExtraBedPrice: dec("1000"),
		TaxGST:        dec("18"),
	})
	require.NoError(t, err)
	return room
}

func (e *testEnv) book(t *testing.T, roomID uuid.UUID, checkIn, checkOut string, advance string) *entity.Booking {
	t.Helper()
	input := &CreateBookingInput{
		RoomID:    roomID,
		GuestName: "Meera Shah",
		Adults:    2,
		ExtraBed:  true,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Advance:   decimal.RequireFromString(advance),
	}
	if input.Advance.IsPositive() {
		input.PaymentMethod = "cash"
	}
	booking, err := e.bookings.CreateBooking(e.ctx, input)
	require.NoError(t, err)
	return booking
}

func requireAppError(t *testing.T, err error, code int) *apperror.AppError {
	t.Helper()
	require.Error(t, err)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	require.Equal(t, code, appErr.Code, appErr.Message)
	return appErr
}
