package converter

import (
	"hospital-operations-api/internal/delivery/dto"
	"hospital-operations-api/internal/domain/entity"
)

// BillToResponse converts a Bill entity to BillResponse DTO. The GST
// split is derived from the stored tax-inclusive total on every
// conversion, never read from storage.
func BillToResponse(bill *entity.Bill) *dto.BillResponse {
	if bill == nil {
		return nil
	}

	breakdown := bill.TaxComponents()

	response := &dto.BillResponse{
		ID:             bill.ID,
		BillNumber:     bill.BillNumber,
		PatientID:      bill.PatientID,
		DoctorID:       bill.DoctorID,
		AppointmentID:  bill.AppointmentID,
		TotalAmount:    bill.TotalAmount.StringFixed(2),
		BaseAmount:     breakdown.Base.StringFixed(2),
		CGST:           breakdown.CGST.StringFixed(2),
		SGST:           breakdown.SGST.StringFixed(2),
		PaymentMode:    string(bill.PaymentMode),
		PaymentStatus:  string(bill.PaymentStatus),
		PaymentDetails: map[string]interface{}(bill.PaymentDetails),
		CreatedAt:      bill.CreatedAt,
		UpdatedAt:      bill.UpdatedAt,
	}

	if len(bill.Services) > 0 {
		services := make([]dto.BillServiceResponse, len(bill.Services))
		for i, s := range bill.Services {
			services[i] = dto.BillServiceResponse{
				Name:      s.Name,
				Quantity:  s.Quantity,
				UnitPrice: s.UnitPrice.StringFixed(2),
				LineTotal: s.LineTotal.StringFixed(2),
			}
		}
		response.Services = services
	}

	return response
}

// BillsToResponses converts a slice of Bill entities to DTOs
func BillsToResponses(bills []entity.Bill) []dto.BillResponse {
	responses := make([]dto.BillResponse, len(bills))
	for i, bill := range bills {
		resp := BillToResponse(&bill)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
