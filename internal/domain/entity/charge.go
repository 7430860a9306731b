package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/innkeeper-api/internal/domain/pricing"
	"gorm.io/gorm"
)

// ExtraCharge is a flat amount added to a booking (laundry, damages, late checkout)
type ExtraCharge struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	PropertyID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"property_id"`
	BookingID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"booking_id"`
	Description string         `gorm:"size:255;not null" json:"description"`
	Amount      int64          `gorm:"not null" json:"-"` // Stored in paise, excluded from JSON
	CreatedBy   uuid.UUID      `gorm:"type:uuid" json:"created_by"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (c ExtraCharge) MarshalJSON() ([]byte, error) {
	type Alias ExtraCharge
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(c),
		Amount: pricing.MinorToFloat(c.Amount),
	})
}

// BeforeCreate generates a UUID before creating a new extra charge
func (c *ExtraCharge) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ExtraCharge model
func (ExtraCharge) TableName() string {
	return "extra_charges"
}
