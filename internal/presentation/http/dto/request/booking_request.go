package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RateOverride replaces the room's pricing for a single booking
type RateOverride struct {
	BaseRate        decimal.Decimal `json:"base_rate"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	ExtraBedFee     decimal.Decimal `json:"extra_bed_fee"`
	TaxPercent      decimal.Decimal `json:"tax_percent"`
}

// CreateBookingRequest represents a booking creation request
type CreateBookingRequest struct {
	RoomID        uuid.UUID       `json:"room_id" binding:"required"`
	GuestName     string          `json:"guest_name" binding:"required,max=255"`
	GuestPhone    string          `json:"guest_phone" binding:"omitempty,max=50"`
	GuestEmail    string          `json:"guest_email" binding:"omitempty,email"`
	IDProof       string          `json:"id_proof" binding:"omitempty,max=100"`
	Adults        int             `json:"adults" binding:"omitempty,min=1,max=20"`
	Children      int             `json:"children" binding:"omitempty,min=0,max=20"`
	ExtraBed      bool            `json:"extra_bed"`
	CheckIn       string          `json:"check_in" binding:"required"`
	CheckOut      string          `json:"check_out" binding:"required"`
	Rate          *RateOverride   `json:"rate"`
	Advance       decimal.Decimal `json:"advance"`
	PaymentMethod string          `json:"payment_method" binding:"omitempty,max=50"`
	Notes         string          `json:"notes"`
}

// BookingFilterRequest represents booking list filters
type BookingFilterRequest struct {
	Search        string `form:"search"`
	Status        *int   `form:"status" binding:"omitempty,min=0,max=2"`
	PaymentStatus *int   `form:"payment_status" binding:"omitempty,min=0,max=2"`
	RoomID        string `form:"room_id"`
	StartDate     string `form:"start_date"`
	EndDate       string `form:"end_date"`
	SortBy        string `form:"sort_by"`
	SortOrder     string `form:"sort_order"`
	Page          int    `form:"page"`
	PerPage       int    `form:"per_page"`
}

// ExtraChargeRequest represents a flat charge on a booking
type ExtraChargeRequest struct {
	Description string          `json:"description" binding:"required,max=255"`
	Amount      decimal.Decimal `json:"amount"`
}

// PaymentRequest represents a payment against a booking
type PaymentRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method" binding:"required,max=50"`
	Reference string          `json:"reference" binding:"omitempty,max=255"`
	Category  string          `json:"category" binding:"omitempty,oneof=room food other"`
}
