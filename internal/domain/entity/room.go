package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/innkeeper-api/internal/domain/enum"
	"github.com/sangkips/innkeeper-api/internal/domain/pricing"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Room is a sellable room and the pricing template bookings copy from
type Room struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	PropertyID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_rooms_property_number" json:"property_id"`
	Number        string          `gorm:"size:20;not null;uniqueIndex:idx_rooms_property_number" json:"number"`
	Type          string          `gorm:"size:100" json:"type"`
	Description   string          `gorm:"type:text" json:"description"`
	Capacity      int             `gorm:"default:2" json:"capacity"`
	Price         int64           `gorm:"not null" json:"-"` // Stored in paise, excluded from JSON
	Discount      float64         `gorm:"default:0" json:"discount"`
	ExtraBedPrice int64           `gorm:"default:0" json:"-"` // Stored in paise, excluded from JSON
	TaxGST        float64         `gorm:"column:tax_gst;default:0" json:"tax_gst"`
	Status        enum.RoomStatus `gorm:"default:0" json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (r Room) MarshalJSON() ([]byte, error) {
	type Alias Room
	return json.Marshal(&struct {
		Alias
		Price         float64 `json:"price"`
		ExtraBedPrice float64 `json:"extra_bed_price"`
	}{
		Alias:         Alias(r),
		Price:         pricing.MinorToFloat(r.Price),
		ExtraBedPrice: pricing.MinorToFloat(r.ExtraBedPrice),
	})
}

// UnmarshalJSON restores a room from its API form. Used by the room cache.
func (r *Room) UnmarshalJSON(data []byte) error {
	type Alias Room
	aux := &struct {
		*Alias
		Price         float64 `json:"price"`
		ExtraBedPrice float64 `json:"extra_bed_price"`
	}{Alias: (*Alias)(r)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	r.Price = pricing.ToMinor(decimal.NewFromFloat(aux.Price))
	r.ExtraBedPrice = pricing.ToMinor(decimal.NewFromFloat(aux.ExtraBedPrice))
	return nil
}

// BeforeCreate generates a UUID before creating a new room
func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Room model
func (Room) TableName() string {
	return "rooms"
}

// RateModifiers maps the room record onto the pricing rule. The extra-bed fee
// only applies when the guest asked for one.
func (r *Room) RateModifiers(extraBed bool) pricing.RateModifiers {
	m := pricing.RateModifiers{
		BaseRate:        pricing.FromMinor(r.Price),
		DiscountPercent: decimal.NewFromFloat(r.Discount),
		TaxPercent:      decimal.NewFromFloat(r.TaxGST),
	}
	if extraBed {
		m.ExtraBedFee = pricing.FromMinor(r.ExtraBedPrice)
	}
	return m
}
