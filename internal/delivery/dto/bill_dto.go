package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateBillRequest struct {
	PatientID      uuid.UUID              `json:"patient_id" validate:"required"`
	DoctorID       *uuid.UUID             `json:"doctor_id" validate:"omitempty"`
	AppointmentID  *uuid.UUID             `json:"appointment_id" validate:"omitempty"`
	Amount         string                 `json:"amount" validate:"required"`
	PaymentMode    string                 `json:"payment_mode" validate:"required,oneof=Cash Card UPI QR Insurance"`
	PaymentStatus  string                 `json:"payment_status" validate:"omitempty,oneof=Paid Pending Failed Partial"`
	PaymentDetails map[string]interface{} `json:"payment_details" validate:"omitempty"`
}

type UpdateBillPaymentRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=Paid Pending Failed Partial"`
	PaymentMode   string `json:"payment_mode" validate:"required,oneof=Cash Card UPI QR Insurance"`
}

// Response DTOs

type BillServiceResponse struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

type BillResponse struct {
	ID             uuid.UUID              `json:"id"`
	BillNumber     string                 `json:"bill_number"`
	PatientID      uuid.UUID              `json:"patient_id"`
	DoctorID       *uuid.UUID             `json:"doctor_id,omitempty"`
	AppointmentID  *uuid.UUID             `json:"appointment_id,omitempty"`
	TotalAmount    string                 `json:"total_amount"`
	BaseAmount     string                 `json:"base_amount"`
	CGST           string                 `json:"cgst"`
	SGST           string                 `json:"sgst"`
	PaymentMode    string                 `json:"payment_mode"`
	PaymentStatus  string                 `json:"payment_status"`
	PaymentDetails map[string]interface{} `json:"payment_details,omitempty"`
	Services       []BillServiceResponse  `json:"services,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

type BillListResponse struct {
	Bills []BillResponse `json:"bills"`
	Total int            `json:"total"`
}
