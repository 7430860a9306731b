package utils

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// GenerateBookingNo generates a booking number like BK-240315-1A2B3C4D
func GenerateBookingNo(prefix string, at time.Time) string {
	if prefix == "" {
		prefix = "BK"
	}
	return prefix + "-" + at.Format("060102") + "-" + shortID()
}

// GenerateOrderNo generates a food order number
func GenerateOrderNo() string {
	return "FO-" + shortID()
}

// GenerateReceiptNo derives the receipt number from the booking number
func GenerateReceiptNo(bookingNo string) string {
	return "RCPT-" + bookingNo
}

func shortID() string {
	return strings.ToUpper(uuid.New().String()[:8])
}
