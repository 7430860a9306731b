package service

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sangkips/innkeeper-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildReceipt(t *testing.T) {
	env := setupEnv(t)
	room := env.deluxeRoom(t, "101")
	booking := env.book(t, room.ID, "2024-03-10", "2024-03-13", "10000")

	thali := env.menuItem(t, "Veg Thali", "250", 10)
	_, err := env.food.CreateOrder(env.ctx, &CreateFoodOrderInput{
		BookingID: booking.ID,
		Items:     []OrderLineInput{{FoodItemID: thali.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	_, err = env.bookings.AddExtraCharge(env.ctx, booking.ID, &AddExtraChargeInput{Description: "Laundry", Amount: decimal.NewFromInt(60)})
	require.NoError(t, err)

	r, err := env.receipts.BuildReceipt(env.ctx, booking.ID)
	require.NoError(t, err)

	assert.Equal(t, "Sea View", r.Header.PropertyName)
	assert.Equal(t, "30ABCDE1234F1Z5", r.Header.GSTIN)
	assert.Equal(t, "RCPT-"+booking.BookingNo, r.ReceiptNo)
	assert.Equal(t, "Meera Shah", r.Guest)
	assert.Equal(t, "Room 101 (Deluxe)", r.Room)
	assert.Equal(t, "2024-03-10", r.CheckIn)
	assert.Equal(t, "Asha Naik", r.Cashier)
	assert.Equal(t, "Rs.", r.CurrencySymbol)

	kinds := make([]entity.ReceiptRowKind, 0, len(r.Rows))
	for _, row := range r.Rows {
		kinds = append(kinds, row.Kind)
	}
	assert.Equal(t, []entity.ReceiptRowKind{
		entity.ReceiptRowRoom, entity.ReceiptRowFood, entity.ReceiptRowExtra,
		entity.ReceiptRowSubtotal, entity.ReceiptRowAdvance, entity.ReceiptRowBalance,
	}, kinds)

	assert.Equal(t, 6310.0, r.Rows[0].Rate)
	assert.Equal(t, 3, r.Rows[0].Quantity)
	assert.Equal(t, 19490.0, r.Subtotal)
	assert.Equal(t, 10000.0, r.Advance)
	assert.Equal(t, 9490.0, r.Balance)
	assert.Equal(t, "Partial", r.PaymentStatus)
}

func TestPrintReceipt(t *testing.T) {
	env := setupEnv(t)
	room := env.deluxeRoom(t, "101")
	booking := env.book(t, room.ID, "2024-03-10", "2024-03-11", "0")

	r, err := env.receipts.PrintReceipt(env.ctx, booking.ID)
	require.NoError(t, err)
	require.Len(t, env.printer.printed, 1)
	data := env.printer.printed[0]
	assert.True(t, bytes.Contains(data, []byte("Sea View")))
	assert.True(t, bytes.Contains(data, []byte("BALANCE DUE:")))
	assert.True(t, bytes.Contains(data, []byte("Rs.6310.00")))
	assert.True(t, bytes.Contains(data, []byte(r.Footer)))

	env.printer.err = errors.New("paper out")
	r, err = env.receipts.PrintReceipt(env.ctx, booking.ID)
	assert.Error(t, err)
	assert.NotNil(t, r)

	status := env.receipts.GetStatus(env.ctx)
	assert.True(t, status.Configured)
	assert.False(t, status.Connected)
}

func TestExportReceipt(t *testing.T) {
	env := setupEnv(t)
	room := env.deluxeRoom(t, "101")
	booking := env.book(t, room.ID, "2024-03-10", "2024-03-12", "0")

	data, name, err := env.receipts.ExportReceipt(env.ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, "RCPT-"+booking.BookingNo+".xlsx", name)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Receipt")
	require.NoError(t, err)
	assert.NotEmpty(t, rows)
}

func TestFormatReceipt_FitsWidth(t *testing.T) {
	r := &entity.Receipt{
		Header:    entity.ReceiptHeader{PropertyName: "Inn"},
		ReceiptNo: "RCPT-1",
		Date:      "2024-03-10 10:00",
		Rows: []entity.ReceiptRow{
			{Kind: entity.ReceiptRowRoom, Description: "Room 101 (Presidential Suite With Ocean View)", Rate: 6310, Quantity: 3, Amount: 18930},
		},
		Subtotal: 18930,
		Balance:  18930,
	}
	out := FormatReceipt(r, 32)
	for _, line := range bytes.Split(out, []byte("\n")) {
		printable := bytes.TrimLeft(line, "\x1b\x1d!aE@V\x00\x01\x11")
		if bytes.HasPrefix(printable, []byte("Room")) || bytes.HasPrefix(printable, []byte("  3 x")) {
			assert.LessOrEqual(t, len(printable), 32, string(printable))
		}
	}
}
