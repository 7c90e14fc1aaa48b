package entity

import "testing"

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{AppointmentStatusPending, AppointmentStatusConfirmed, true},
		{AppointmentStatusPending, AppointmentStatusCancelled, true},
		{AppointmentStatusPending, AppointmentStatusCompleted, false},
		{AppointmentStatusPending, AppointmentStatusPending, false},
		{AppointmentStatusConfirmed, AppointmentStatusCompleted, true},
		{AppointmentStatusConfirmed, AppointmentStatusCancelled, true},
		{AppointmentStatusConfirmed, AppointmentStatusPending, false},
		{AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{AppointmentStatusCompleted, AppointmentStatusConfirmed, false},
		{AppointmentStatusCancelled, AppointmentStatusPending, false},
		{AppointmentStatusCancelled, AppointmentStatusConfirmed, false},
	}

	for _, tt := range tests {
		a := &Appointment{Status: tt.from}
		if got := a.CanTransitionTo(tt.to); got != tt.allowed {
			t.Fatalf("%s -> %s: expected %v, got %v", tt.from, tt.to, tt.allowed, got)
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []AppointmentStatus{AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusCompleted, AppointmentStatusCancelled} {
		if !ValidStatus(s) {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if ValidStatus("archived") {
		t.Fatal("expected archived to be invalid")
	}
	if ValidStatus("") {
		t.Fatal("expected empty status to be invalid")
	}
}

func TestStatusPredicates(t *testing.T) {
	a := &Appointment{Status: AppointmentStatusPending}
	if !a.IsPending() || a.IsConfirmed() || a.IsCompleted() || a.IsCancelled() {
		t.Fatal("pending predicates wrong")
	}

	a.Status = AppointmentStatusConfirmed
	if !a.IsConfirmed() || a.IsPending() {
		t.Fatal("confirmed predicates wrong")
	}
}
