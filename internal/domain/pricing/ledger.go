package pricing

import (
	"github.com/sangkips/innkeeper-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// LineItemKind tells which producer created a line item.
type LineItemKind string

const (
	KindRoom  LineItemKind = "room"
	KindFood  LineItemKind = "food"
	KindExtra LineItemKind = "extra"
)

// LineItem is a single charge in a settlement.
type LineItem struct {
	Kind        LineItemKind    `json:"kind"`
	Description string          `json:"description"`
	UnitRate    decimal.Decimal `json:"unit_rate"`
	Quantity    int             `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
}

// NewLineItem prices quantity units at unitRate. Quantity is at least 1.
func NewLineItem(kind LineItemKind, description string, unitRate decimal.Decimal, quantity int) LineItem {
	if quantity < 1 {
		quantity = 1
	}
	return LineItem{
		Kind:        kind,
		Description: description,
		UnitRate:    unitRate,
		Quantity:    quantity,
		Amount:      unitRate.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// FlatCharge is an extra charge carrying an explicit amount.
func FlatCharge(description string, amount decimal.Decimal) LineItem {
	return LineItem{
		Kind:        KindExtra,
		Description: description,
		UnitRate:    amount,
		Quantity:    1,
		Amount:      amount,
	}
}

// RoomCharge turns a stay into the room line. The unit rate is total / nights,
// with a zero-night stay divided by 1.
func RoomCharge(description string, stay Stay) LineItem {
	nights := stay.Nights
	if nights < 1 {
		nights = 1
	}
	return LineItem{
		Kind:        KindRoom,
		Description: description,
		UnitRate:    stay.TotalAmount.Div(decimal.NewFromInt(int64(nights))),
		Quantity:    nights,
		Amount:      stay.TotalAmount,
	}
}

// Settlement is the financial summary of one booking.
type Settlement struct {
	LineItems     []LineItem         `json:"line_items"`
	AdvancePaid   decimal.Decimal    `json:"advance_paid"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	BalanceDue    decimal.Decimal    `json:"balance_due"`
	PaymentStatus enum.PaymentStatus `json:"payment_status"`
}

// ComputeSettlement sums the line items and offsets the advance against them.
func ComputeSettlement(items []LineItem, advancePaid decimal.Decimal) Settlement {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Amount)
	}

	balance := subtotal.Sub(advancePaid)
	if balance.IsNegative() {
		balance = decimal.Zero
	}

	owned := make([]LineItem, len(items))
	copy(owned, items)

	return Settlement{
		LineItems:     owned,
		AdvancePaid:   advancePaid,
		Subtotal:      subtotal,
		BalanceDue:    balance,
		PaymentStatus: ClassifyPayment(subtotal, advancePaid),
	}
}

// ClassifyPayment returns Paid when the advance covers the subtotal, Partial
// when something but not everything is paid, and Pending otherwise.
func ClassifyPayment(subtotal, advancePaid decimal.Decimal) enum.PaymentStatus {
	switch {
	case advancePaid.GreaterThanOrEqual(subtotal):
		return enum.PaymentStatusPaid
	case advancePaid.IsPositive():
		return enum.PaymentStatusPartial
	default:
		return enum.PaymentStatusPending
	}
}
