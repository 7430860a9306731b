package entity

import "github.com/sangkips/innkeeper-api/internal/domain/pricing"

// ReceiptHeader holds the property header printed at the top of a receipt.
type ReceiptHeader struct {
	PropertyName string `json:"property_name"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
	GSTIN        string `json:"gstin,omitempty"`
}

// ReceiptRowKind separates charge rows from the summary rows below them.
type ReceiptRowKind string

const (
	ReceiptRowRoom     ReceiptRowKind = "room"
	ReceiptRowFood     ReceiptRowKind = "food"
	ReceiptRowExtra    ReceiptRowKind = "extra"
	ReceiptRowSubtotal ReceiptRowKind = "subtotal"
	ReceiptRowAdvance  ReceiptRowKind = "advance"
	ReceiptRowBalance  ReceiptRowKind = "balance"
)

// ReceiptRow is one printed line. Summary rows only carry an amount.
type ReceiptRow struct {
	Kind        ReceiptRowKind `json:"kind"`
	Description string         `json:"description"`
	Rate        float64        `json:"rate,omitempty"`
	Quantity    int            `json:"quantity,omitempty"`
	Amount      float64        `json:"amount"`
}

// IsSummary reports whether the row belongs to the totals block
func (r ReceiptRow) IsSummary() bool {
	switch r.Kind {
	case ReceiptRowSubtotal, ReceiptRowAdvance, ReceiptRowBalance:
		return true
	}
	return false
}

// Receipt is a value object representing a printable guest bill.
// It is NOT a database entity; it is composed from a booking settlement at print time.
type Receipt struct {
	Header         ReceiptHeader      `json:"header"`
	ReceiptNo      string             `json:"receipt_no"`
	Date           string             `json:"date"`
	Guest          string             `json:"guest,omitempty"`
	Room           string             `json:"room,omitempty"`
	CheckIn        string             `json:"check_in,omitempty"`
	CheckOut       string             `json:"check_out,omitempty"`
	Cashier        string             `json:"cashier,omitempty"`
	PaymentMethod  string             `json:"payment_method,omitempty"`
	CurrencySymbol string             `json:"currency_symbol,omitempty"`
	Footer         string             `json:"footer,omitempty"`
	Rows           []ReceiptRow       `json:"rows"`
	Subtotal       float64            `json:"subtotal"`
	Advance        float64            `json:"advance"`
	Balance        float64            `json:"balance"`
	PaymentStatus  string             `json:"payment_status"`
	Settlement     pricing.Settlement `json:"-"`
}

// ChargeRows returns the rows above the totals block
func (r *Receipt) ChargeRows() []ReceiptRow {
	rows := make([]ReceiptRow, 0, len(r.Rows))
	for _, row := range r.Rows {
		if !row.IsSummary() {
			rows = append(rows, row)
		}
	}
	return rows
}
