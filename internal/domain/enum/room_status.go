package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// RoomStatus represents whether a room can be sold
type RoomStatus int

const (
	RoomStatusAvailable   RoomStatus = 0
	RoomStatusOccupied    RoomStatus = 1
	RoomStatusMaintenance RoomStatus = 2
)

func (s RoomStatus) String() string {
	names := [...]string{"Available", "Occupied", "Maintenance"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Available"
	}
	return names[s]
}

func (s RoomStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *RoomStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = RoomStatus(i)
		return nil
	}
	switch str {
	case "Available":
		*s = RoomStatusAvailable
	case "Occupied":
		*s = RoomStatusOccupied
	case "Maintenance":
		*s = RoomStatusMaintenance
	}
	return nil
}

func (s RoomStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *RoomStatus) Scan(value interface{}) error {
	if value == nil {
		*s = RoomStatusAvailable
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = RoomStatus(v)
	case int:
		*s = RoomStatus(v)
	}
	return nil
}
