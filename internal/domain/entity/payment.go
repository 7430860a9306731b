package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/innkeeper-api/internal/domain/pricing"
	"gorm.io/gorm"
)

// Payment records money received against a booking
type Payment struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	PropertyID uuid.UUID `gorm:"type:uuid;not null;index" json:"property_id"`
	BookingID  uuid.UUID `gorm:"type:uuid;not null;index" json:"booking_id"`
	Amount     int64     `gorm:"not null" json:"-"` // Stored in paise, excluded from JSON
	Method     string    `gorm:"size:50;not null" json:"method"`
	Reference  string    `gorm:"size:255" json:"reference"`
	ReceivedBy uuid.UUID `gorm:"type:uuid" json:"received_by"`
	PaidAt     time.Time `gorm:"not null;index" json:"paid_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (p Payment) MarshalJSON() ([]byte, error) {
	type Alias Payment
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(p),
		Amount: pricing.MinorToFloat(p.Amount),
	})
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.PaidAt.IsZero() {
		p.PaidAt = time.Now()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}

// Revenue categories
const (
	RevenueCategoryRoom  = "room"
	RevenueCategoryFood  = "food"
	RevenueCategoryOther = "other"
)

// IsRevenueCategory reports whether c is a known revenue category
func IsRevenueCategory(c string) bool {
	switch c {
	case RevenueCategoryRoom, RevenueCategoryFood, RevenueCategoryOther:
		return true
	}
	return false
}

// Revenue sources
const (
	RevenueSourceAdvance    = "advance"
	RevenueSourceSettlement = "settlement"
)

// RevenueEntry is an append-only row in the property's revenue ledger
type RevenueEntry struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	PropertyID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"property_id"`
	BookingID   *uuid.UUID `gorm:"type:uuid;index" json:"booking_id,omitempty"`
	PaymentID   *uuid.UUID `gorm:"type:uuid;index" json:"payment_id,omitempty"`
	Source      string     `gorm:"size:50;not null" json:"source"`
	Category    string     `gorm:"size:50;not null;index" json:"category"`
	Amount      int64      `gorm:"not null" json:"-"` // Stored in paise, excluded from JSON
	Description string     `gorm:"size:255" json:"description"`
	RecordedAt  time.Time  `gorm:"not null;index" json:"recorded_at"`
	CreatedAt   time.Time  `json:"created_at"`

	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (r RevenueEntry) MarshalJSON() ([]byte, error) {
	type Alias RevenueEntry
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(r),
		Amount: pricing.MinorToFloat(r.Amount),
	})
}

// BeforeCreate generates a UUID before creating a new revenue entry
func (r *RevenueEntry) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.RecordedAt.IsZero() {
		r.RecordedAt = time.Now()
	}
	return nil
}

// TableName returns the table name for the RevenueEntry model
func (RevenueEntry) TableName() string {
	return "revenue_entries"
}
