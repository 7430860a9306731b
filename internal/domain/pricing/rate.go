// Package pricing computes nightly rates, stay totals and booking settlements.
//
// Every function here is pure: the booking screen and the receipt renderer call
// the same functions on the same inputs and must get identical amounts.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.New(5, -1)
)

// RateModifiers is the per-night pricing rule of a room, copied into a booking
// at creation time.
type RateModifiers struct {
	BaseRate        decimal.Decimal `json:"base_rate"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	ExtraBedFee     decimal.Decimal `json:"extra_bed_fee"`
	TaxPercent      decimal.Decimal `json:"tax_percent"`
}

// Active reports whether any modifier changes the base rate.
func (m RateModifiers) Active() bool {
	return !m.DiscountPercent.IsZero() || !m.ExtraBedFee.IsZero() || !m.TaxPercent.IsZero()
}

// ComposeNightlyRate applies discount, then tax on the discounted amount, then
// the extra-bed fee, and rounds to a whole currency unit (half up).
// A result <= 0 is returned as an absent rate (Valid == false), not zero.
func ComposeNightlyRate(m RateModifiers) decimal.NullDecimal {
	discounted := m.BaseRate.Sub(m.BaseRate.Mul(m.DiscountPercent).Div(hundred))
	withTax := discounted.Add(discounted.Mul(m.TaxPercent).Div(hundred))
	final := withTax.Add(m.ExtraBedFee).Add(half).Floor()

	if !final.IsPositive() {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(final)
}

// ParseAmount reads a form value as a decimal. Empty or non-numeric input is 0.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ModifiersFromStrings builds RateModifiers from raw form values.
func ModifiersFromStrings(baseRate, discountPercent, extraBedFee, taxPercent string) RateModifiers {
	return RateModifiers{
		BaseRate:        ParseAmount(baseRate),
		DiscountPercent: ParseAmount(discountPercent),
		ExtraBedFee:     ParseAmount(extraBedFee),
		TaxPercent:      ParseAmount(taxPercent),
	}
}
