package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type UpdatePatientRequest struct {
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender      string `json:"gender" validate:"omitempty,oneof=M F"`
	BloodGroup  string `json:"blood_group" validate:"omitempty,max=3"`
	Address     string `json:"address" validate:"omitempty"`
}

// Response DTOs

type PatientResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	PatientCode string    `json:"patient_code"`
	FullName    string    `json:"full_name,omitempty"`
	Email       string    `json:"email,omitempty"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	DateOfBirth string    `json:"date_of_birth"`
	Gender      string    `json:"gender"`
	BloodGroup  string    `json:"blood_group,omitempty"`
	Address     string    `json:"address,omitempty"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
