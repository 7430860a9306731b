package receipt

import (
	"testing"

	"github.com/sangkips/innkeeper-api/internal/domain/entity"
	"github.com/sangkips/innkeeper-api/internal/domain/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestBuild_RowOrderAndTotals(t *testing.T) {
	stay := pricing.Stay{Nights: 3, NightlyRate: dec(6310), TotalAmount: dec(18930)}
	items := []pricing.LineItem{
		pricing.FlatCharge("Laundry", dec(200)),
		pricing.NewLineItem(pricing.KindFood, "Masala Dosa", dec(120), 2),
		pricing.RoomCharge("Room 101 (Deluxe)", stay),
		pricing.NewLineItem(pricing.KindFood, "Tea", dec(30), 4),
	}
	s := pricing.ComputeSettlement(items, dec(10000))

	r := Build(Meta{Header: entity.ReceiptHeader{PropertyName: "Sea View"}, ReceiptNo: "RCPT-1"}, s)

	require.Len(t, r.Rows, 7)
	kinds := make([]entity.ReceiptRowKind, len(r.Rows))
	for i, row := range r.Rows {
		kinds[i] = row.Kind
	}
	assert.Equal(t, []entity.ReceiptRowKind{
		entity.ReceiptRowRoom,
		entity.ReceiptRowFood,
		entity.ReceiptRowFood,
		entity.ReceiptRowExtra,
		entity.ReceiptRowSubtotal,
		entity.ReceiptRowAdvance,
		entity.ReceiptRowBalance,
	}, kinds)

	// Food rows keep their settlement order
	assert.Equal(t, "Masala Dosa", r.Rows[1].Description)
	assert.Equal(t, "Tea", r.Rows[2].Description)

	room := r.Rows[0]
	assert.Equal(t, 6310.0, room.Rate)
	assert.Equal(t, 3, room.Quantity)
	assert.Equal(t, 18930.0, room.Amount)

	assert.Equal(t, 19490.0, r.Subtotal)
	assert.Equal(t, 10000.0, r.Advance)
	assert.Equal(t, 9490.0, r.Balance)
	assert.Equal(t, "Partial", r.PaymentStatus)
	assert.Equal(t, "Sea View", r.Header.PropertyName)
	assert.Len(t, r.ChargeRows(), 4)
}

func TestBuild_ZeroNightRoomDividesByOne(t *testing.T) {
	stay := pricing.Stay{Nights: 0, NightlyRate: dec(5000), TotalAmount: decimal.Zero}
	s := pricing.ComputeSettlement([]pricing.LineItem{pricing.RoomCharge("Room 7", stay)}, decimal.Zero)

	r := Build(Meta{}, s)

	assert.Equal(t, 0.0, r.Rows[0].Rate)
	assert.Equal(t, 1, r.Rows[0].Quantity)
	assert.Equal(t, "Paid", r.PaymentStatus)
}

func TestBuild_DoesNotReorderSettlement(t *testing.T) {
	items := []pricing.LineItem{
		pricing.FlatCharge("Parking", dec(100)),
		pricing.RoomCharge("Room 1", pricing.Stay{Nights: 1, TotalAmount: dec(1000)}),
	}
	s := pricing.ComputeSettlement(items, decimal.Zero)

	_ = Build(Meta{}, s)

	assert.Equal(t, pricing.KindExtra, s.LineItems[0].Kind)
}
