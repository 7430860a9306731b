package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/innkeeper-api/internal/domain/pricing"
	"gorm.io/gorm"
)

// FoodItem is a menu entry that can be ordered to a room
type FoodItem struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	PropertyID uuid.UUID      `gorm:"type:uuid;not null;index" json:"property_id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Category   string         `gorm:"size:100" json:"category"`
	Price      int64          `gorm:"not null" json:"-"` // Stored in paise, excluded from JSON
	Stock      int            `gorm:"default:0" json:"stock"`
	Available  bool           `gorm:"not null" json:"available"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (f FoodItem) MarshalJSON() ([]byte, error) {
	type Alias FoodItem
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(f),
		Price: pricing.MinorToFloat(f.Price),
	})
}

// BeforeCreate generates a UUID before creating a new food item
func (f *FoodItem) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the FoodItem model
func (FoodItem) TableName() string {
	return "food_items"
}

// FoodOrder is a batch of food items charged to a booking
type FoodOrder struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	PropertyID uuid.UUID      `gorm:"type:uuid;not null;index" json:"property_id"`
	BookingID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"booking_id"`
	OrderNo    string         `gorm:"size:100;unique;not null" json:"order_no"`
	Total      int64          `gorm:"default:0" json:"-"` // Stored in paise, excluded from JSON
	CreatedBy  uuid.UUID      `gorm:"type:uuid" json:"created_by"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Items []FoodOrderItem `gorm:"foreignKey:FoodOrderID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (o FoodOrder) MarshalJSON() ([]byte, error) {
	type Alias FoodOrder
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
	}{
		Alias: Alias(o),
		Total: pricing.MinorToFloat(o.Total),
	})
}

// BeforeCreate generates a UUID before creating a new food order
func (o *FoodOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the FoodOrder model
func (FoodOrder) TableName() string {
	return "food_orders"
}

// FoodOrderItem snapshots the name and price of a food item at order time
type FoodOrderItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FoodOrderID uuid.UUID `gorm:"type:uuid;not null;index" json:"food_order_id"`
	FoodItemID  uuid.UUID `gorm:"type:uuid;not null;index" json:"food_item_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	UnitPrice   int64     `gorm:"not null" json:"-"` // Stored in paise, excluded from JSON
	Total       int64     `gorm:"not null" json:"-"` // Stored in paise, excluded from JSON
	CreatedAt   time.Time `json:"created_at"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (i FoodOrderItem) MarshalJSON() ([]byte, error) {
	type Alias FoodOrderItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Total     float64 `json:"total"`
	}{
		Alias:     Alias(i),
		UnitPrice: pricing.MinorToFloat(i.UnitPrice),
		Total:     pricing.MinorToFloat(i.Total),
	})
}

// BeforeCreate generates a UUID before creating a new food order item
func (i *FoodOrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the FoodOrderItem model
func (FoodOrderItem) TableName() string {
	return "food_order_items"
}
