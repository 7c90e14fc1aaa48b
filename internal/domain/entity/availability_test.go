package entity

import (
	"testing"
	"time"
)

func TestAvailabilityValidate(t *testing.T) {
	ok := Availability{Days: Weekdays{Monday}, StartTime: "09:00", EndTime: "17:00"}
	if err := ok.Validate(); err != nil {
		t.Fatalf("expected valid window, got %v", err)
	}

	inverted := Availability{Days: Weekdays{Monday}, StartTime: "17:00", EndTime: "09:00"}
	if err := inverted.Validate(); err != ErrInvalidAvailability {
		t.Fatalf("expected ErrInvalidAvailability, got %v", err)
	}

	equal := Availability{Days: Weekdays{Monday}, StartTime: "09:00", EndTime: "09:00"}
	if err := equal.Validate(); err != ErrInvalidAvailability {
		t.Fatalf("expected ErrInvalidAvailability for equal times, got %v", err)
	}

	garbage := Availability{Days: Weekdays{Monday}, StartTime: "9am", EndTime: "17:00"}
	if err := garbage.Validate(); err == nil {
		t.Fatal("expected error for unparseable start time")
	}
}

func TestWeekdaysContains(t *testing.T) {
	days := Weekdays{Monday, Wednesday, Friday}
	if !days.Contains(time.Monday) {
		t.Fatal("expected Monday to be a working day")
	}
	if days.Contains(time.Sunday) {
		t.Fatal("expected Sunday to be off")
	}
}

func TestAvailabilityAllows(t *testing.T) {
	av := Availability{Days: Weekdays{Monday, Tuesday, Wednesday, Thursday, Friday}}

	wednesday := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	if !av.Allows(wednesday) {
		t.Fatal("expected Wednesday to be allowed")
	}

	saturday := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	if av.Allows(saturday) {
		t.Fatal("expected Saturday to be rejected")
	}
}

func TestWeekdaysScanRoundTrip(t *testing.T) {
	original := Weekdays{Monday, Tuesday}
	value, err := original.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}

	var scanned Weekdays
	if err := scanned.Scan(value); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(scanned) != 2 || scanned[0] != Monday || scanned[1] != Tuesday {
		t.Fatalf("round trip mismatch: %v", scanned)
	}

	var empty Weekdays
	if err := empty.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) failed: %v", err)
	}
	if empty != nil {
		t.Fatalf("expected nil weekdays, got %v", empty)
	}
}
