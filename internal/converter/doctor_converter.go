package converter

import (
	"hospital-operations-api/internal/delivery/dto"
	"hospital-operations-api/internal/domain/entity"
)

// DoctorProfileToResponse converts a DoctorProfile entity to DoctorResponse DTO
func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorResponse {
	if profile == nil {
		return nil
	}

	return &dto.DoctorResponse{
		UserID:          profile.UserID,
		DoctorCode:      profile.DoctorCode,
		FullName:        profile.User.FullName,
		Email:           profile.User.Email,
		Specialization:  profile.Specialization,
		Department:      profile.Department,
		ConsultationFee: profile.ConsultationFee.StringFixed(2),
		Availability: dto.AvailabilityResponse{
			Days:      []string(profile.Availability.Days),
			StartTime: profile.Availability.StartTime,
			EndTime:   profile.Availability.EndTime,
		},
		CreatedAt: profile.User.CreatedAt,
	}
}

// DoctorProfilesToResponses converts a slice of DoctorProfile entities to DTOs
func DoctorProfilesToResponses(profiles []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(profiles))
	for i, profile := range profiles {
		resp := DoctorProfileToResponse(&profile)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
