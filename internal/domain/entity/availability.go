package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidAvailability is returned when an availability window is malformed
var ErrInvalidAvailability = errors.New("availability start time must be before end time")

// Weekdays is a set of working days stored as a jsonb array of day names
type Weekdays []string

// Weekday name constants, matching time.Weekday.String()
const (
	Monday    = "Monday"
	Tuesday   = "Tuesday"
	Wednesday = "Wednesday"
	Thursday  = "Thursday"
	Friday    = "Friday"
	Saturday  = "Saturday"
	Sunday    = "Sunday"
)

// Value implements driver.Valuer for jsonb storage
func (w Weekdays) Value() (driver.Value, error) {
	if len(w) == 0 {
		return nil, nil
	}
	return json.Marshal(w)
}

// Scan implements sql.Scanner for jsonb storage
func (w *Weekdays) Scan(value interface{}) error {
	if value == nil {
		*w = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal weekdays value: %v", value)
	}

	var result []string
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*w = Weekdays(result)
	return nil
}

// Contains reports whether the given weekday is a working day
func (w Weekdays) Contains(day time.Weekday) bool {
	name := day.String()
	for _, d := range w {
		if d == name {
			return true
		}
	}
	return false
}

// Availability is a doctor's recurring weekly working window.
// Times are clock values in "HH:MM" format.
type Availability struct {
	Days      Weekdays `gorm:"type:jsonb" json:"days"`
	StartTime string   `gorm:"type:time;default:'09:00'" json:"start_time"`
	EndTime   string   `gorm:"type:time;default:'17:00'" json:"end_time"`
}

// Allows reports whether the given calendar date falls on a working day
func (a Availability) Allows(date time.Time) bool {
	return a.Days.Contains(date.Weekday())
}

// Validate checks the window is well-formed: parseable HH:MM times with
// start strictly before end
func (a Availability) Validate() error {
	start, err := time.Parse("15:04", a.StartTime)
	if err != nil {
		return fmt.Errorf("invalid start time %q: %w", a.StartTime, err)
	}
	end, err := time.Parse("15:04", a.EndTime)
	if err != nil {
		return fmt.Errorf("invalid end time %q: %w", a.EndTime, err)
	}
	if !start.Before(end) {
		return ErrInvalidAvailability
	}
	return nil
}
