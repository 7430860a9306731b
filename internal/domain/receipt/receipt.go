// Package receipt lays a settlement out as printable rows. Renderers (the
// ESC/POS printer, the spreadsheet export, the JSON API) all consume the same
// entity.Receipt so the numbers match everywhere.
package receipt

import (
	"sort"

	"github.com/sangkips/innkeeper-api/internal/domain/entity"
	"github.com/sangkips/innkeeper-api/internal/domain/pricing"
)

// Meta is everything on a receipt that does not come from the settlement.
type Meta struct {
	Header         entity.ReceiptHeader
	ReceiptNo      string
	Date           string
	Guest          string
	Room           string
	CheckIn        string
	CheckOut       string
	Cashier        string
	PaymentMethod  string
	CurrencySymbol string
	Footer         string
}

var kindOrder = map[pricing.LineItemKind]int{
	pricing.KindRoom:  0,
	pricing.KindFood:  1,
	pricing.KindExtra: 2,
}

var rowKind = map[pricing.LineItemKind]entity.ReceiptRowKind{
	pricing.KindRoom:  entity.ReceiptRowRoom,
	pricing.KindFood:  entity.ReceiptRowFood,
	pricing.KindExtra: entity.ReceiptRowExtra,
}

// Build returns the receipt for s: room row, food rows, extra rows, then the
// subtotal, advance and balance rows. Within a kind the settlement order is kept.
func Build(meta Meta, s pricing.Settlement) entity.Receipt {
	items := make([]pricing.LineItem, len(s.LineItems))
	copy(items, s.LineItems)
	sort.SliceStable(items, func(i, j int) bool {
		return kindOrder[items[i].Kind] < kindOrder[items[j].Kind]
	})

	rows := make([]entity.ReceiptRow, 0, len(items)+3)
	for _, it := range items {
		rows = append(rows, entity.ReceiptRow{
			Kind:        rowKind[it.Kind],
			Description: it.Description,
			Rate:        it.UnitRate.Round(2).InexactFloat64(),
			Quantity:    it.Quantity,
			Amount:      it.Amount.Round(2).InexactFloat64(),
		})
	}

	subtotal := s.Subtotal.Round(2).InexactFloat64()
	advance := s.AdvancePaid.Round(2).InexactFloat64()
	balance := s.BalanceDue.Round(2).InexactFloat64()

	rows = append(rows,
		entity.ReceiptRow{Kind: entity.ReceiptRowSubtotal, Description: "Subtotal", Amount: subtotal},
		entity.ReceiptRow{Kind: entity.ReceiptRowAdvance, Description: "Advance paid", Amount: advance},
		entity.ReceiptRow{Kind: entity.ReceiptRowBalance, Description: "Balance due", Amount: balance},
	)

	return entity.Receipt{
		Header:         meta.Header,
		ReceiptNo:      meta.ReceiptNo,
		Date:           meta.Date,
		Guest:          meta.Guest,
		Room:           meta.Room,
		CheckIn:        meta.CheckIn,
		CheckOut:       meta.CheckOut,
		Cashier:        meta.Cashier,
		PaymentMethod:  meta.PaymentMethod,
		CurrencySymbol: meta.CurrencySymbol,
		Footer:         meta.Footer,
		Rows:           rows,
		Subtotal:       subtotal,
		Advance:        advance,
		Balance:        balance,
		PaymentStatus:  s.PaymentStatus.String(),
		Settlement:     s,
	}
}
