package service

import (
	"fmt"
	"time"

	"hospital-operations-api/internal/domain/entity"
)

// SlotInterval is the fixed length of a bookable slot
const SlotInterval = 30 * time.Minute

// Slot is one bookable interval within a doctor's working window,
// identified by its start clock time.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// GenerateSlots partitions the availability window [start, end) into
// 30-minute slots for the given date, in chronological order. A slot is
// unavailable when a confirmed appointment already holds its exact time
// or, on the current day, when its start time is at or before now.
// Pending appointments never block a slot: the slot is only reserved at
// confirmation time.
//
// Dates outside the doctor's working days produce no slots, as do
// windows where start >= end. A trailing interval shorter than 30
// minutes is dropped. The result is recomputed in full on every call.
func GenerateSlots(av entity.Availability, confirmedTimes []string, date, now time.Time) []Slot {
	start, err := clockMinutes(av.StartTime)
	if err != nil {
		return nil
	}
	end, err := clockMinutes(av.EndTime)
	if err != nil {
		return nil
	}
	if start >= end {
		return []Slot{}
	}
	if !av.Allows(date) {
		return []Slot{}
	}

	booked := make(map[string]struct{}, len(confirmedTimes))
	for _, t := range confirmedTimes {
		booked[t] = struct{}{}
	}

	isToday := sameDay(date, now)
	nowMinutes := now.Hour()*60 + now.Minute()

	step := int(SlotInterval.Minutes())
	slots := make([]Slot, 0, (end-start)/step)
	for m := start; m+step <= end; m += step {
		t := fmt.Sprintf("%02d:%02d", m/60, m%60)

		_, isBooked := booked[t]
		isPastOrNow := isToday && m <= nowMinutes

		slots = append(slots, Slot{
			Time:      t,
			Available: !isBooked && !isPastOrNow,
		})
	}

	return slots
}

// clockMinutes converts an "HH:MM" clock value to minutes since midnight
func clockMinutes(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
