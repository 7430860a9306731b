package pricing

import "github.com/shopspring/decimal"

// FromMinor converts a stored amount in minor units (paise) to a decimal.
func FromMinor(v int64) decimal.Decimal {
	return decimal.New(v, -2)
}

// ToMinor converts a decimal amount to minor units, rounding half away from zero.
func ToMinor(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}

// MinorToFloat is used by JSON marshalers that expose stored amounts.
func MinorToFloat(v int64) float64 {
	return FromMinor(v).InexactFloat64()
}
