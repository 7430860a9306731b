package request

// UpdateSettingsRequest represents a property profile update
type UpdateSettingsRequest struct {
	Name           *string `json:"name" binding:"omitempty,min=2,max=255"`
	Address        *string `json:"address"`
	Phone          *string `json:"phone" binding:"omitempty,max=50"`
	Email          *string `json:"email" binding:"omitempty,email"`
	GSTIN          *string `json:"gstin" binding:"omitempty,max=20"`
	CurrencySymbol *string `json:"currency_symbol" binding:"omitempty,max=10"`
	Timezone       *string `json:"timezone" binding:"omitempty,max=64"`
	CheckInTime    *string `json:"check_in_time" binding:"omitempty,len=5"`
	CheckOutTime   *string `json:"check_out_time" binding:"omitempty,len=5"`
	BookingPrefix  *string `json:"booking_prefix" binding:"omitempty,alphanum,max=10"`
	ReceiptFooter  *string `json:"receipt_footer" binding:"omitempty,max=255"`
}

// RevenueFilterRequest represents revenue ledger filters
type RevenueFilterRequest struct {
	Category  string `form:"category"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
	Cursor    string `form:"cursor"`
	Limit     int    `form:"limit"`
}
