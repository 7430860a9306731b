package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Property is a hotel managed from the dashboard. Every catalog and booking
// row belongs to exactly one property.
type Property struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	Name      string           `gorm:"size:255;not null" json:"name"`
	Address   string           `gorm:"type:text" json:"address"`
	Phone     string           `gorm:"size:50" json:"phone"`
	Email     string           `gorm:"size:255" json:"email"`
	GSTIN     string           `gorm:"column:gstin;size:20" json:"gstin"`
	Settings  PropertySettings `gorm:"type:jsonb;serializer:json" json:"settings"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	DeletedAt gorm.DeletedAt   `gorm:"index" json:"-"`
}

// PropertySettings holds the front-desk preferences shown on the settings screen
type PropertySettings struct {
	CurrencySymbol string `json:"currency_symbol,omitempty"`
	Timezone       string `json:"timezone,omitempty"`
	CheckInTime    string `json:"check_in_time,omitempty"`
	CheckOutTime   string `json:"check_out_time,omitempty"`
	BookingPrefix  string `json:"booking_prefix,omitempty"`
	ReceiptFooter  string `json:"receipt_footer,omitempty"`
}

// DefaultPropertySettings returns the settings a new property starts with
func DefaultPropertySettings() PropertySettings {
	return PropertySettings{
		CurrencySymbol: "Rs.",
		Timezone:       "Asia/Kolkata",
		CheckInTime:    "12:00",
		CheckOutTime:   "11:00",
		BookingPrefix:  "BK",
		ReceiptFooter:  "Thank you for staying with us!",
	}
}

// BeforeCreate generates a UUID and fills missing settings
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Settings == (PropertySettings{}) {
		p.Settings = DefaultPropertySettings()
	}
	return nil
}

// TableName returns the table name for the Property model
func (Property) TableName() string {
	return "properties"
}
