package validator

import "testing"

type sampleRequest struct {
	Email string `validate:"required,email"`
	Mode  string `validate:"required,oneof=Cash Card"`
	Date  string `validate:"omitempty,datetime=2006-01-02"`
}

func TestValidate(t *testing.T) {
	cv := NewValidator()

	valid := sampleRequest{Email: "a@b.com", Mode: "Cash", Date: "2026-09-01"}
	if err := cv.Validate(&valid); err != nil {
		t.Fatalf("expected valid struct, got %v", err)
	}

	invalid := sampleRequest{Email: "not-an-email", Mode: "Cheque", Date: "01-09-2026"}
	err := cv.Validate(&invalid)
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	formatted := cv.FormatValidationErrors(err)
	if len(formatted) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", len(formatted), formatted)
	}
	if formatted["Mode"] != "Mode must be one of: Cash Card" {
		t.Fatalf("unexpected oneof message: %s", formatted["Mode"])
	}
	if formatted["Date"] != "Date must match the format 2006-01-02" {
		t.Fatalf("unexpected datetime message: %s", formatted["Date"])
	}
}
