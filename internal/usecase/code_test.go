package usecase

import (
	"regexp"
	"testing"
	"time"
)

func TestGeneratePatientCode(t *testing.T) {
	code, err := generatePatientCode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !regexp.MustCompile(`^PAT-[0-9A-F]{8}$`).MatchString(code) {
		t.Fatalf("unexpected patient code format: %s", code)
	}
}

func TestGenerateDoctorCode(t *testing.T) {
	code, err := generateDoctorCode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !regexp.MustCompile(`^DOC-[0-9A-F]{8}$`).MatchString(code) {
		t.Fatalf("unexpected doctor code format: %s", code)
	}
}

func TestGenerateAppointmentCode(t *testing.T) {
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	code, err := generateAppointmentCode(date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !regexp.MustCompile(`^APT-20260902-[0-9A-F]{6}$`).MatchString(code) {
		t.Fatalf("unexpected appointment code format: %s", code)
	}
}
