package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type AvailabilityRequest struct {
	Days      []string `json:"days" validate:"required,min=1,dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime string   `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string   `json:"end_time" validate:"required,datetime=15:04"`
}

type CreateDoctorRequest struct {
	Email           string              `json:"email" validate:"required,email"`
	Password        string              `json:"password" validate:"required,min=6"`
	FullName        string              `json:"full_name" validate:"required,min=2"`
	Specialization  string              `json:"specialization" validate:"required"`
	Department      string              `json:"department" validate:"required"`
	ConsultationFee string              `json:"consultation_fee" validate:"required"`
	Availability    AvailabilityRequest `json:"availability" validate:"required"`
}

type UpdateDoctorRequest struct {
	Specialization  string               `json:"specialization" validate:"omitempty"`
	Department      string               `json:"department" validate:"omitempty"`
	ConsultationFee string               `json:"consultation_fee" validate:"omitempty"`
	Availability    *AvailabilityRequest `json:"availability" validate:"omitempty"`
}

// Response DTOs

type AvailabilityResponse struct {
	Days      []string `json:"days"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
}

type DoctorResponse struct {
	UserID          uuid.UUID            `json:"user_id"`
	DoctorCode      string               `json:"doctor_code"`
	FullName        string               `json:"full_name,omitempty"`
	Email           string               `json:"email,omitempty"`
	Specialization  string               `json:"specialization"`
	Department      string               `json:"department"`
	ConsultationFee string               `json:"consultation_fee"`
	Availability    AvailabilityResponse `json:"availability"`
	CreatedAt       time.Time            `json:"created_at,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
