package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus int

const (
	BookingStatusConfirmed  BookingStatus = 0
	BookingStatusCheckedOut BookingStatus = 1
	BookingStatusCancelled  BookingStatus = 2
)

func (s BookingStatus) String() string {
	names := [...]string{"Confirmed", "CheckedOut", "Cancelled"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Confirmed"
	}
	return names[s]
}

func (s BookingStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *BookingStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = BookingStatus(i)
		return nil
	}
	switch str {
	case "Confirmed":
		*s = BookingStatusConfirmed
	case "CheckedOut":
		*s = BookingStatusCheckedOut
	case "Cancelled":
		*s = BookingStatusCancelled
	}
	return nil
}

func (s BookingStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *BookingStatus) Scan(value interface{}) error {
	if value == nil {
		*s = BookingStatusConfirmed
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = BookingStatus(v)
	case int:
		*s = BookingStatus(v)
	}
	return nil
}
