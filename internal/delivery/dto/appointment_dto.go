package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID *uuid.UUID `json:"patient_id" validate:"omitempty"`
	DoctorID  uuid.UUID  `json:"doctor_id" validate:"required"`
	Date      string     `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string     `json:"time" validate:"required,datetime=15:04"`
	Purpose   string     `json:"purpose" validate:"required,min=2,max=255"`
	Symptoms  string     `json:"symptoms" validate:"omitempty"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

// Response DTOs

type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type SlotListResponse struct {
	DoctorID uuid.UUID      `json:"doctor_id"`
	Date     string         `json:"date"`
	Slots    []SlotResponse `json:"slots"`
}

type AppointmentResponse struct {
	ID              uuid.UUID        `json:"id"`
	AppointmentCode string           `json:"appointment_code"`
	PatientID       uuid.UUID        `json:"patient_id"`
	DoctorID        uuid.UUID        `json:"doctor_id"`
	Date            string           `json:"date"`
	Time            string           `json:"time"`
	Purpose         string           `json:"purpose"`
	Symptoms        string           `json:"symptoms,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	Status          string           `json:"status"`
	Patient         *PatientResponse `json:"patient,omitempty"`
	Doctor          *DoctorResponse  `json:"doctor,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
