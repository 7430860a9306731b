package repository

import "errors"

// ErrStaleBooking is returned when a booking changed between read and write
var ErrStaleBooking = errors.New("booking was modified concurrently")
