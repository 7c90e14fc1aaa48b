package service

import (
	"testing"
	"time"

	"hospital-operations-api/internal/domain/entity"
)

func weekdayWindow(start, end string) entity.Availability {
	return entity.Availability{
		Days:      entity.Weekdays{entity.Monday, entity.Tuesday, entity.Wednesday, entity.Thursday, entity.Friday},
		StartTime: start,
		EndTime:   end,
	}
}

func TestGenerateSlots_FullDay(t *testing.T) {
	// Wednesday, a working day, with now long before the date
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	slots := GenerateSlots(weekdayWindow("09:00", "17:00"), []string{"10:00"}, date, now)
	if len(slots) != 16 {
		t.Fatalf("expected 16 slots, got %d", len(slots))
	}
	if slots[0].Time != "09:00" {
		t.Fatalf("expected first slot 09:00, got %s", slots[0].Time)
	}
	if slots[15].Time != "16:30" {
		t.Fatalf("expected last slot 16:30, got %s", slots[15].Time)
	}

	unavailable := 0
	for _, s := range slots {
		if !s.Available {
			unavailable++
			if s.Time != "10:00" {
				t.Fatalf("expected only 10:00 unavailable, got %s", s.Time)
			}
		}
	}
	if unavailable != 1 {
		t.Fatalf("expected 1 unavailable slot, got %d", unavailable)
	}
}

func TestGenerateSlots_ChronologicalOrder(t *testing.T) {
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	slots := GenerateSlots(weekdayWindow("09:00", "17:00"), nil, date, now)
	for i := 1; i < len(slots); i++ {
		if slots[i-1].Time >= slots[i].Time {
			t.Fatalf("slots out of order: %s before %s", slots[i-1].Time, slots[i].Time)
		}
	}
}

func TestGenerateSlots_SkipsPastOrNow(t *testing.T) {
	// Today at 10:00: every slot at or before 10:00 is gone
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)

	slots := GenerateSlots(weekdayWindow("09:00", "12:00"), nil, date, now)
	for _, s := range slots {
		switch s.Time {
		case "09:00", "09:30", "10:00":
			if s.Available {
				t.Fatalf("expected %s unavailable at 10:00, got available", s.Time)
			}
		default:
			if !s.Available {
				t.Fatalf("expected %s available, got unavailable", s.Time)
			}
		}
	}
}

func TestGenerateSlots_NonWorkingDay(t *testing.T) {
	// Sunday is outside the Monday-Friday window
	date := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	slots := GenerateSlots(weekdayWindow("09:00", "17:00"), nil, date, now)
	if len(slots) != 0 {
		t.Fatalf("expected no slots on a non-working day, got %d", len(slots))
	}
}

func TestGenerateSlots_EmptyWindow(t *testing.T) {
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	slots := GenerateSlots(weekdayWindow("17:00", "09:00"), nil, date, now)
	if len(slots) != 0 {
		t.Fatalf("expected no slots when start >= end, got %d", len(slots))
	}
}

func TestGenerateSlots_DropsShortTail(t *testing.T) {
	// 09:00-09:45 fits one full slot; the 15-minute tail is dropped
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	slots := GenerateSlots(weekdayWindow("09:00", "09:45"), nil, date, now)
	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(slots))
	}
	if slots[0].Time != "09:00" {
		t.Fatalf("expected slot 09:00, got %s", slots[0].Time)
	}
}

func TestGenerateSlots_BookedSlotsStayListed(t *testing.T) {
	// A confirmed time is still in the list, just marked unavailable
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	slots := GenerateSlots(weekdayWindow("09:00", "10:00"), []string{"09:00", "09:30"}, date, now)
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	for _, s := range slots {
		if s.Available {
			t.Fatalf("expected %s unavailable, got available", s.Time)
		}
	}
}

func TestFormatBillNumber(t *testing.T) {
	at := time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC)

	got := FormatBillNumber(at, 7)
	if got != "BILL-2609-0007" {
		t.Fatalf("expected BILL-2609-0007, got %s", got)
	}

	got = FormatBillNumber(at, 12345)
	if got != "BILL-2609-12345" {
		t.Fatalf("expected BILL-2609-12345, got %s", got)
	}
}
