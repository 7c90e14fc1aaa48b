package handler

import (
	"encoding/json"
	"net/http"

	"hospital-operations-api/internal/delivery/dto"
	"hospital-operations-api/internal/usecase"
	"hospital-operations-api/pkg/response"
	"hospital-operations-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type BillingHandler struct {
	billingUsecase usecase.BillingUsecase
	validator      *validator.CustomValidator
}

func NewBillingHandler(billingUsecase usecase.BillingUsecase, validator *validator.CustomValidator) *BillingHandler {
	return &BillingHandler{
		billingUsecase: billingUsecase,
		validator:      validator,
	}
}

func (h *BillingHandler) CreateBill(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	bill, err := h.billingUsecase.CreateBill(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrInvalidAmount:
			response.Error(w, http.StatusBadRequest, "Invalid bill amount", nil)
		case usecase.ErrInvalidPaymentMode:
			response.Error(w, http.StatusBadRequest, "Invalid payment mode", nil)
		case usecase.ErrInvalidPaymentStatus:
			response.Error(w, http.StatusBadRequest, "Invalid payment status", nil)
		case usecase.ErrNotAuthorized:
			response.Forbidden(w, "You don't have permission to create bills")
		default:
			response.InternalServerError(w, "Failed to create bill")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Bill created successfully", bill)
}

func (h *BillingHandler) GetBill(w http.ResponseWriter, r *http.Request) {
	billID, ok := h.billID(w, r)
	if !ok {
		return
	}

	bill, err := h.billingUsecase.GetBill(r.Context(), billID)
	if err != nil {
		switch err {
		case usecase.ErrBillNotFound:
			response.NotFound(w, "Bill not found")
		case usecase.ErrNotAuthorized:
			response.Forbidden(w, "You don't have permission to view this bill")
		default:
			response.InternalServerError(w, "Failed to get bill")
		}
		return
	}

	response.Success(w, http.StatusOK, "Bill retrieved successfully", bill)
}

func (h *BillingHandler) GetAllBills(w http.ResponseWriter, r *http.Request) {
	bills, err := h.billingUsecase.GetAllBills(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get bills")
		return
	}

	response.Success(w, http.StatusOK, "Bills retrieved successfully", bills)
}

func (h *BillingHandler) GetBillsByPatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := uuid.Parse(vars["patientId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	bills, err := h.billingUsecase.GetBillsByPatient(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get bills")
		return
	}

	response.Success(w, http.StatusOK, "Bills retrieved successfully", bills)
}

func (h *BillingHandler) GetMyBills(w http.ResponseWriter, r *http.Request) {
	bills, err := h.billingUsecase.GetMyBills(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get bills")
		return
	}

	response.Success(w, http.StatusOK, "Bills retrieved successfully", bills)
}

func (h *BillingHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	billID, ok := h.billID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateBillPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	bill, err := h.billingUsecase.UpdatePayment(r.Context(), billID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBillNotFound:
			response.NotFound(w, "Bill not found")
		case usecase.ErrInvalidPaymentMode:
			response.Error(w, http.StatusBadRequest, "Invalid payment mode", nil)
		case usecase.ErrInvalidPaymentStatus:
			response.Error(w, http.StatusBadRequest, "Invalid payment status", nil)
		case usecase.ErrNotAuthorized:
			response.Forbidden(w, "You don't have permission to update bill payments")
		default:
			response.InternalServerError(w, "Failed to update bill payment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Bill payment updated successfully", bill)
}

func (h *BillingHandler) billID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	vars := mux.Vars(r)
	billID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid bill ID", nil)
		return uuid.Nil, false
	}
	return billID, true
}
