package service

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/sangkips/innkeeper-api/internal/domain/entity"
	"github.com/sangkips/innkeeper-api/internal/domain/enum"
	"github.com/sangkips/innkeeper-api/internal/domain/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) menuItem(t *testing.T, name, price string, stock int) *entity.FoodItem {
	t.Helper()
	item, err := e.food.CreateFoodItem(e.ctx, &FoodItemInput{
		Name:     strPtr(name),
		Category: strPtr("Main"),
		Price:    dec(price),
		Stock:    &stock,
	})
	require.NoError(t, err)
	return item
}

func TestFoodItems_AdminOnlyWrites(t *testing.T) {
	env := setupEnv(t)

	_, err := env.food.CreateFoodItem(env.staffCtx, &FoodItemInput{Name: strPtr("Tea"), Price: dec("20")})
	requireAppError(t, err, http.StatusForbidden)

	item := env.menuItem(t, "Tea", "20", 10)
	assert.True(t, item.Available)

	off := false
	updated, err := env.food.UpdateFoodItem(env.ctx, item.ID, &FoodItemInput{Available: &off})
	require.NoError(t, err)
	assert.False(t, updated.Available)

	list, err := env.food.ListFoodItems(env.staffCtx, nil, "te", "")
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.False(t, list.Items[0].Available)

	require.NoError(t, env.food.DeleteFoodItem(env.ctx, item.ID))
	_, err = env.food.GetFoodItem(env.ctx, item.ID)
	requireAppError(t, err, http.StatusNotFound)
}

func TestCreateOrder_ChargesBooking(t *testing.T) {
	env := setupEnv(t)
	room := env.deluxeRoom(t, "101")
	booking := env.book(t, room.ID, "2024-03-10", "2024-03-13", "18930")
	assert.Equal(t, enum.PaymentStatusPaid, booking.PaymentStatus)

	thali := env.menuItem(t, "Veg Thali", "250", 10)
	lassi := env.menuItem(t, "Lassi", "60", 5)

	order, err := env.food.CreateOrder(env.staffCtx, &CreateFoodOrderInput{
		BookingID: booking.ID,
		Items: []OrderLineInput{
			{FoodItemID: thali.ID, Quantity: 2},
			{FoodItemID: lassi.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(56000), order.Total)
	assert.Regexp(t, `^FO-`, order.OrderNo)

	stocked, err := env.food.GetFoodItem(env.ctx, thali.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, stocked.Stock)

	view, err := env.bookings.GetSettlement(env.ctx, booking.ID)
	require.NoError(t, err)
	require.Len(t, view.Settlement.LineItems, 3)
	assert.Equal(t, pricing.KindFood, view.Settlement.LineItems[1].Kind)
	assert.True(t, view.Settlement.LineItems[1].Amount.Equal(decimal.NewFromInt(500)))
	assert.True(t, view.Settlement.BalanceDue.Equal(decimal.NewFromInt(560)))
	assert.Equal(t, enum.PaymentStatusPartial, view.Booking.PaymentStatus)

	orders, err := env.food.ListOrders(env.ctx, booking.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Len(t, orders[0].Items, 2)

	fetched, err := env.food.GetOrder(env.staffCtx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.OrderNo, fetched.OrderNo)
	assert.Len(t, fetched.Items, 2)

	_, err = env.food.GetOrder(env.ctx, uuid.New())
	requireAppError(t, err, http.StatusNotFound)
	_, err = env.food.ListOrders(env.ctx, uuid.New())
	requireAppError(t, err, http.StatusNotFound)
}

func TestCreateOrder_InsufficientStockTakesNothing(t *testing.T) {
	env := setupEnv(t)
	room := env.deluxeRoom(t, "101")
	booking := env.book(t, room.ID, "2024-03-10", "2024-03-11", "0")

	thali := env.menuItem(t, "Veg Thali", "250", 10)
	lassi := env.menuItem(t, "Lassi", "60", 1)

	_, err := env.food.CreateOrder(env.ctx, &CreateFoodOrderInput{
		BookingID: booking.ID,
		Items: []OrderLineInput{
			{FoodItemID: thali.ID, Quantity: 2},
			{FoodItemID: lassi.ID, Quantity: 1},
			{FoodItemID: lassi.ID, Quantity: 1},
		},
	})
	appErr := requireAppError(t, err, http.StatusUnprocessableEntity)
	assert.Contains(t, appErr.Message, "Lassi")
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, lassi.ID.String(), appErr.Errors[0].Field)

	stocked, err := env.food.GetFoodItem(env.ctx, thali.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, stocked.Stock)

	var orders int64
	require.NoError(t, env.db.Model(&entity.FoodOrder{}).Count(&orders).Error)
	assert.Zero(t, orders)
}

func TestCreateOrder_Rejections(t *testing.T) {
	env := setupEnv(t)
	room := env.deluxeRoom(t, "101")
	booking := env.book(t, room.ID, "2024-03-10", "2024-03-11", "0")
	tea := env.menuItem(t, "Tea", "20", 10)
	off := false
	_, err := env.food.UpdateFoodItem(env.ctx, tea.ID, &FoodItemInput{Available: &off})
	require.NoError(t, err)

	_, err = env.food.CreateOrder(env.ctx, &CreateFoodOrderInput{BookingID: booking.ID})
	requireAppError(t, err, http.StatusUnprocessableEntity)

	_, err = env.food.CreateOrder(env.ctx, &CreateFoodOrderInput{
		BookingID: booking.ID,
		Items:     []OrderLineInput{{FoodItemID: tea.ID, Quantity: 0}},
	})
	requireAppError(t, err, http.StatusUnprocessableEntity)

	_, err = env.food.CreateOrder(env.ctx, &CreateFoodOrderInput{
		BookingID: booking.ID,
		Items:     []OrderLineInput{{FoodItemID: uuid.New(), Quantity: 1}},
	})
	requireAppError(t, err, http.StatusNotFound)

	_, err = env.food.CreateOrder(env.ctx, &CreateFoodOrderInput{
		BookingID: booking.ID,
		Items:     []OrderLineInput{{FoodItemID: tea.ID, Quantity: 1}},
	})
	requireAppError(t, err, http.StatusUnprocessableEntity)

	_, err = env.food.CreateOrder(env.ctx, &CreateFoodOrderInput{
		BookingID: uuid.New(),
		Items:     []OrderLineInput{{FoodItemID: tea.ID, Quantity: 1}},
	})
	requireAppError(t, err, http.StatusNotFound)
}
