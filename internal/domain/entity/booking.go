package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/innkeeper-api/internal/domain/enum"
	"github.com/sangkips/innkeeper-api/internal/domain/pricing"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Booking is a guest stay in one room. The rate modifiers are copied from the
// room when the booking is created and never follow later room edits.
type Booking struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	PropertyID uuid.UUID `gorm:"type:uuid;not null;index" json:"property_id"`
	RoomID     uuid.UUID `gorm:"type:uuid;not null;index" json:"room_id"`
	BookingNo  string    `gorm:"size:100;unique;not null" json:"booking_no"`

	GuestName  string `gorm:"size:255;not null" json:"guest_name"`
	GuestPhone string `gorm:"size:50" json:"guest_phone"`
	GuestEmail string `gorm:"size:255" json:"guest_email"`
	IDProof    string `gorm:"size:100" json:"id_proof"`
	Adults     int    `gorm:"default:1" json:"adults"`
	Children   int    `gorm:"default:0" json:"children"`
	ExtraBed   bool   `gorm:"default:false" json:"extra_bed"`

	CheckIn  time.Time `gorm:"type:date;not null;index" json:"check_in"`
	CheckOut time.Time `gorm:"type:date;not null" json:"check_out"`
	Nights   int       `gorm:"not null" json:"nights"`

	// Copied rate modifiers, money in paise
	BaseRate        int64   `gorm:"not null" json:"-"`
	DiscountPercent float64 `gorm:"default:0" json:"discount_percent"`
	ExtraBedFee     int64   `gorm:"default:0" json:"-"`
	TaxPercent      float64 `gorm:"default:0" json:"tax_percent"`

	NightlyRate int64 `gorm:"not null" json:"-"`
	TotalAmount int64 `gorm:"not null" json:"-"`
	Advance     int64 `gorm:"default:0" json:"-"`

	PaymentMethod string             `gorm:"size:50" json:"payment_method"`
	PaymentStatus enum.PaymentStatus `gorm:"default:0;index" json:"payment_status"`
	Status        enum.BookingStatus `gorm:"default:0;index" json:"status"`
	Notes         string             `gorm:"type:text" json:"notes"`
	CreatedBy     uuid.UUID          `gorm:"type:uuid" json:"created_by"`
	CheckedOutAt  *time.Time         `json:"checked_out_at,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Room         *Room         `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	FoodOrders   []FoodOrder   `gorm:"foreignKey:BookingID" json:"food_orders,omitempty"`
	ExtraCharges []ExtraCharge `gorm:"foreignKey:BookingID" json:"extra_charges,omitempty"`
	Payments     []Payment     `gorm:"foreignKey:BookingID" json:"payments,omitempty"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (b Booking) MarshalJSON() ([]byte, error) {
	type Alias Booking
	return json.Marshal(&struct {
		Alias
		BaseRate    float64  `json:"base_rate"`
		ExtraBedFee float64  `json:"extra_bed_fee"`
		NightlyRate float64  `json:"nightly_rate"`
		TotalAmount float64  `json:"total_amount"`
		BaseAmount  *float64 `json:"base_amount"`
		Advance     float64  `json:"advance"`
	}{
		Alias:       Alias(b),
		BaseRate:    pricing.MinorToFloat(b.BaseRate),
		ExtraBedFee: pricing.MinorToFloat(b.ExtraBedFee),
		NightlyRate: pricing.MinorToFloat(b.NightlyRate),
		TotalAmount: pricing.MinorToFloat(b.TotalAmount),
		BaseAmount:  b.baseAmountFloat(),
		Advance:     pricing.MinorToFloat(b.Advance),
	})
}

func (b Booking) baseAmountFloat() *float64 {
	q := b.Quote()
	if !q.BaseAmount.Valid {
		return nil
	}
	f := q.BaseAmount.Decimal.InexactFloat64()
	return &f
}

// BeforeCreate generates a UUID before creating a new booking
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}

// ApplyModifiers copies a pricing rule into the booking.
func (b *Booking) ApplyModifiers(m pricing.RateModifiers) {
	b.BaseRate = pricing.ToMinor(m.BaseRate)
	b.DiscountPercent = m.DiscountPercent.InexactFloat64()
	b.ExtraBedFee = pricing.ToMinor(m.ExtraBedFee)
	b.TaxPercent = m.TaxPercent.InexactFloat64()
}

// Modifiers returns the rate modifiers captured at creation.
func (b *Booking) Modifiers() pricing.RateModifiers {
	return pricing.RateModifiers{
		BaseRate:        pricing.FromMinor(b.BaseRate),
		DiscountPercent: decimal.NewFromFloat(b.DiscountPercent),
		ExtraBedFee:     pricing.FromMinor(b.ExtraBedFee),
		TaxPercent:      decimal.NewFromFloat(b.TaxPercent),
	}
}

// StayPeriod returns the booked dates.
func (b *Booking) StayPeriod() pricing.StayPeriod {
	return pricing.StayPeriod{CheckIn: b.CheckIn, CheckOut: b.CheckOut}
}

// Quote recomputes the stay price from the stored modifiers and dates.
func (b *Booking) Quote() pricing.Quote {
	return pricing.QuoteStay(b.StayPeriod(), b.Modifiers())
}

// RoomDescription is the label of the room line on receipts
func (b *Booking) RoomDescription() string {
	if b.Room == nil {
		return "Room charge"
	}
	if b.Room.Type == "" {
		return fmt.Sprintf("Room %s", b.Room.Number)
	}
	return fmt.Sprintf("Room %s (%s)", b.Room.Number, b.Room.Type)
}

// LineItems lists the room charge, then food, then extra charges. FoodOrders
// and ExtraCharges must be preloaded.
func (b *Booking) LineItems() []pricing.LineItem {
	stay := pricing.Stay{
		Nights:      b.Nights,
		NightlyRate: pricing.FromMinor(b.NightlyRate),
		TotalAmount: pricing.FromMinor(b.TotalAmount),
	}
	items := []pricing.LineItem{pricing.RoomCharge(b.RoomDescription(), stay)}

	for _, order := range b.FoodOrders {
		for _, it := range order.Items {
			items = append(items, pricing.NewLineItem(pricing.KindFood, it.Name, pricing.FromMinor(it.UnitPrice), it.Quantity))
		}
	}
	for _, c := range b.ExtraCharges {
		items = append(items, pricing.FlatCharge(c.Description, pricing.FromMinor(c.Amount)))
	}
	return items
}

// Settlement computes the booking's current financial summary.
func (b *Booking) Settlement() pricing.Settlement {
	return pricing.ComputeSettlement(b.LineItems(), pricing.FromMinor(b.Advance))
}

// IsActive reports whether charges and payments can still be added
func (b *Booking) IsActive() bool {
	return b.Status == enum.BookingStatusConfirmed
}
