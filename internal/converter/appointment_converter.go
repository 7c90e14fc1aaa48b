package converter

import (
	"hospital-operations-api/internal/delivery/dto"
	"hospital-operations-api/internal/domain/entity"
	"hospital-operations-api/internal/service"

	"github.com/google/uuid"
)

// SlotsToResponses converts generated slots to SlotResponse DTOs
func SlotsToResponses(slots []service.Slot) []dto.SlotResponse {
	responses := make([]dto.SlotResponse, len(slots))
	for i, slot := range slots {
		responses[i] = dto.SlotResponse{
			Time:      slot.Time,
			Available: slot.Available,
		}
	}
	return responses
}

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		AppointmentCode: appointment.AppointmentCode,
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		Date:            appointment.Date.Format("2006-01-02"),
		Time:            appointment.Time,
		Purpose:         appointment.Purpose,
		Symptoms:        appointment.Symptoms,
		Notes:           appointment.Notes,
		Status:          string(appointment.Status),
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	// Include related profiles when preloaded
	if appointment.Patient.UserID != uuid.Nil {
		response.Patient = PatientProfileToResponse(&appointment.Patient)
	}
	if appointment.Doctor.UserID != uuid.Nil {
		response.Doctor = DoctorProfileToResponse(&appointment.Doctor)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
