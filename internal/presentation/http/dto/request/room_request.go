package request

import (
	"github.com/sangkips/innkeeper-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// CreateRoomRequest represents a room creation request
type CreateRoomRequest struct {
	Number        string           `json:"number" binding:"required,max=50"`
	Type          string           `json:"type" binding:"omitempty,max=100"`
	Description   string           `json:"description"`
	Capacity      *int             `json:"capacity" binding:"omitempty,min=1"`
	Price         decimal.Decimal  `json:"price"`
	Discount      decimal.Decimal  `json:"discount"`
	ExtraBedPrice decimal.Decimal  `json:"extra_bed_price"`
	TaxGST        decimal.Decimal  `json:"tax_gst"`
	Status        *enum.RoomStatus `json:"status"`
}

// UpdateRoomRequest represents a room update request
type UpdateRoomRequest struct {
	Number        *string          `json:"number" binding:"omitempty,min=1,max=50"`
	Type          *string          `json:"type" binding:"omitempty,max=100"`
	Description   *string          `json:"description"`
	Capacity      *int             `json:"capacity" binding:"omitempty,min=1"`
	Price         *decimal.Decimal `json:"price"`
	Discount      *decimal.Decimal `json:"discount"`
	ExtraBedPrice *decimal.Decimal `json:"extra_bed_price"`
	TaxGST        *decimal.Decimal `json:"tax_gst"`
	Status        *enum.RoomStatus `json:"status"`
}

// RoomFilterRequest represents room list filters
type RoomFilterRequest struct {
	Search  string `form:"search"`
	Status  *int   `form:"status" binding:"omitempty,min=0,max=2"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}

// QuoteRequest represents a booking form price preview
type QuoteRequest struct {
	CheckIn  string `form:"check_in"`
	CheckOut string `form:"check_out"`
	ExtraBed bool   `form:"extra_bed"`
}
