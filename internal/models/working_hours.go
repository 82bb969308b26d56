package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// WorkingDay is one weekday entry of the recurring schedule. Times are
// business-local HH:MM strings, no timezone anywhere.
type WorkingDay struct {
	DayOfWeek int    `json:"dayOfWeek"`
	IsOpen    bool   `json:"isOpen"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

// WeekSchedule is the full 7-entry schedule, stored as a JSON column on the
// category tables and replaced wholesale on save.
type WeekSchedule []WorkingDay

func (ws WeekSchedule) Value() (driver.Value, error) {
	if ws == nil {
		return nil, nil
	}
	return json.Marshal(ws)
}

func (ws *WeekSchedule) Scan(value any) error {
	if value == nil {
		*ws = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for WeekSchedule", value)
	}

	return json.Unmarshal(raw, ws)
}
