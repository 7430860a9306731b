package pricing

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used for check-in and check-out.
const DateLayout = "2006-01-02"

// StayPeriod is a check-in/check-out pair. A zero time means the date is missing.
type StayPeriod struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

// ParseDate parses a calendar date or an RFC3339 timestamp.
// Unparseable input yields the zero time.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}

// NewStayPeriod parses both dates of a stay.
func NewStayPeriod(checkIn, checkOut string) StayPeriod {
	return StayPeriod{CheckIn: ParseDate(checkIn), CheckOut: ParseDate(checkOut)}
}

// CalendarDates drops the time of day from both dates, keeping the calendar
// day as written in each timestamp's own offset. The results are midnight UTC.
func (p StayPeriod) CalendarDates() StayPeriod {
	return StayPeriod{CheckIn: calendarDay(p.CheckIn), CheckOut: calendarDay(p.CheckOut)}
}

func calendarDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Nights returns the number of nights in the period, rounding partial days up.
// The difference is absolute: a check-out before check-in still counts nights.
func (p StayPeriod) Nights() int {
	if p.CheckIn.IsZero() || p.CheckOut.IsZero() {
		return 0
	}
	d := p.CheckOut.Sub(p.CheckIn)
	if d < 0 {
		d = -d
	}
	return int(math.Ceil(d.Hours() / 24))
}

// Stay is the aggregated charge for a period at a given nightly rate.
type Stay struct {
	Nights      int             `json:"nights"`
	NightlyRate decimal.Decimal `json:"nightly_rate"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// ComputeStay multiplies nights by the nightly rate. The total never goes below 0.
func ComputeStay(period StayPeriod, nightlyRate decimal.Decimal) Stay {
	nights := period.Nights()
	total := nightlyRate.Mul(decimal.NewFromInt(int64(nights)))
	if total.IsNegative() {
		total = decimal.Zero
	}
	return Stay{
		Nights:      nights,
		NightlyRate: nightlyRate,
		TotalAmount: total,
	}
}

// Quote is the full pricing preview for a booking form.
type Quote struct {
	Modifiers   RateModifiers       `json:"modifiers"`
	NightlyRate decimal.NullDecimal `json:"nightly_rate"`
	Nights      int                 `json:"nights"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	// BaseAmount is nights at the undiscounted base rate, set only when a
	// modifier is active. Display only.
	BaseAmount decimal.NullDecimal `json:"base_amount"`
}

// QuoteStay runs the rate composer and the stay aggregator in one pass.
func QuoteStay(period StayPeriod, m RateModifiers) Quote {
	rate := ComposeNightlyRate(m)
	stay := ComputeStay(period, rate.Decimal)

	q := Quote{
		Modifiers:   m,
		NightlyRate: rate,
		Nights:      stay.Nights,
		TotalAmount: stay.TotalAmount,
	}
	if m.Active() {
		base := m.BaseRate.Mul(decimal.NewFromInt(int64(stay.Nights)))
		if base.IsNegative() {
			base = decimal.Zero
		}
		q.BaseAmount = decimal.NewNullDecimal(base)
	}
	return q
}

// Stay returns the quote as a Stay for the ledger.
func (q Quote) Stay() Stay {
	return Stay{
		Nights:      q.Nights,
		NightlyRate: q.NightlyRate.Decimal,
		TotalAmount: q.TotalAmount,
	}
}
