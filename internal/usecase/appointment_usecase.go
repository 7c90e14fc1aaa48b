package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"hospital-operations-api/internal/converter"
	"hospital-operations-api/internal/delivery/dto"
	"hospital-operations-api/internal/delivery/http/middleware"
	"hospital-operations-api/internal/domain/entity"
	"hospital-operations-api/internal/domain/repository"
	"hospital-operations-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrSlotTaken           = errors.New("another confirmed appointment already occupies this slot")
	ErrInvalidTransition   = errors.New("appointment status does not allow this transition")
	ErrInvalidStatus       = errors.New("invalid appointment status")
	ErrNotAuthorized       = errors.New("not authorized to perform this action")
	ErrInvalidTimeFormat   = errors.New("invalid time format, use HH:MM")
	ErrPatientRequired     = errors.New("patient id is required")
	ErrPrincipalMissing    = errors.New("user not found in context")
)

type AppointmentUsecase interface {
	AvailableSlots(ctx context.Context, doctorID uuid.UUID, date string) (*dto.SlotListResponse, error)
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	ConfirmAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, appointmentID uuid.UUID) error
	CompleteAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, appointmentID uuid.UUID, status entity.AppointmentStatus) (*dto.AppointmentResponse, error)
	GetAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetDoctorAppointments(ctx context.Context, date string) (*dto.AppointmentListResponse, error)
	DeleteAppointment(ctx context.Context, appointmentID uuid.UUID) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorProfileRepository
	patientRepo     repository.PatientProfileRepository
	auditService    service.AuditService
	now             func() time.Time
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorProfileRepository,
	patientRepo repository.PatientProfileRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		auditService:    auditService,
		now:             time.Now,
	}
}

// AvailableSlots computes the bookable 30-minute slots for a doctor on
// a calendar date. Only confirmed appointments block a slot; the full
// list is recomputed from the store on every call so a cancellation is
// visible immediately.
func (u *appointmentUsecase) AvailableSlots(ctx context.Context, doctorID uuid.UUID, date string) (*dto.SlotListResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	confirmedTimes, err := u.appointmentRepo.ConfirmedTimesOnDate(u.db.WithContext(ctx), doctorID, day)
	if err != nil {
		u.log.Warnf("Failed to load confirmed times for doctor %s on %s: %+v", doctorID, date, err)
		return nil, err
	}

	slots := service.GenerateSlots(doctor.Availability, confirmedTimes, day, u.now())

	return &dto.SlotListResponse{
		DoctorID: doctorID,
		Date:     date,
		Slots:    converter.SlotsToResponses(slots),
	}, nil
}

// CreateAppointment books a Pending appointment. By design this does
// not check slot availability: pending rows never reserve a slot, so
// two patients may hold pending bookings for the same slot until one of
// them is confirmed.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrPrincipalMissing
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)

	if !entity.CanPerform(roleID, entity.ActionAppointmentCreate, true) {
		return nil, ErrNotAuthorized
	}

	// Patients book for themselves; staff and admin must name the patient
	patientID := userID
	if roleID == entity.RoleIDStaff || roleID == entity.RoleIDAdmin {
		if req.PatientID == nil {
			return nil, ErrPatientRequired
		}
		patientID = *req.PatientID
	}

	patient, err := u.patientRepo.FindByUserID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return nil, ErrInvalidTimeFormat
	}

	appointmentCode, err := generateAppointmentCode(date)
	if err != nil {
		u.log.Errorf("Failed to generate appointment code: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment := &entity.Appointment{
		AppointmentCode: appointmentCode,
		PatientID:       patient.UserID,
		DoctorID:        doctor.UserID,
		Date:            date,
		Time:            req.Time,
		Purpose:         req.Purpose,
		Symptoms:        req.Symptoms,
		Status:          entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogAction(tx, &userID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), entity.JSON{
		"doctor_id": appointment.DoctorID.String(),
		"date":      req.Date,
		"time":      req.Time,
	}); err != nil {
		u.log.Warnf("Failed to write audit log: %+v", err)
		// Audit failures never fail the booking
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit appointment: %+v", err)
		return nil, err
	}

	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}

	u.log.Infof("Appointment created: id=%s, doctor=%s, slot=%s %s", appointment.ID, appointment.DoctorID, req.Date, req.Time)
	return converter.AppointmentToResponse(full), nil
}

// ConfirmAppointment moves a pending appointment to confirmed, claiming
// the slot. The conflict check plus the partial unique index on
// confirmed rows guarantee at most one winner per (doctor, date, time):
// a racing confirm loses either the guarded update or the index insert.
func (u *appointmentUsecase) ConfirmAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrPrincipalMissing
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	owns := appointment.DoctorID == userID
	if !entity.CanPerform(roleID, entity.ActionAppointmentConfirm, owns) {
		return nil, ErrNotAuthorized
	}

	if !appointment.CanTransitionTo(entity.AppointmentStatusConfirmed) {
		return nil, ErrInvalidTransition
	}

	taken, err := u.appointmentRepo.HasConfirmedAtSlot(tx, appointment.DoctorID, appointment.Date, appointment.Time, appointment.ID)
	if err != nil {
		u.log.Warnf("Failed slot conflict check for appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if taken {
		return nil, ErrSlotTaken
	}

	rows, err := u.appointmentRepo.UpdateStatus(tx, appointmentID, entity.AppointmentStatusPending, entity.AppointmentStatusConfirmed)
	if err != nil {
		if isDuplicateKeyError(err, "idx_confirmed_slot") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to confirm appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrInvalidTransition
	}

	if err := u.auditService.LogAction(tx, &userID, entity.AuditActionAppointmentConfirm, "appointment", appointmentID.String(), nil); err != nil {
		u.log.Warnf("Failed to write audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		if isDuplicateKeyError(err, "idx_confirmed_slot") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to commit confirmation of %s: %+v", appointmentID, err)
		return nil, err
	}

	u.log.Infof("Appointment confirmed: id=%s, slot=%s %s", appointmentID, appointment.Date.Format("2006-01-02"), appointment.Time)

	appointment.Status = entity.AppointmentStatusConfirmed
	return converter.AppointmentToResponse(appointment), nil
}

// CancelAppointment cancels from pending or confirmed. Cancelling a
// confirmed appointment frees its slot for the next slot query.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID uuid.UUID) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrPrincipalMissing
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	owns := appointment.PatientID == userID || appointment.DoctorID == userID
	if !entity.CanPerform(roleID, entity.ActionAppointmentCancel, owns) {
		return ErrNotAuthorized
	}

	if !appointment.CanTransitionTo(entity.AppointmentStatusCancelled) {
		return ErrInvalidTransition
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	rows, err := u.appointmentRepo.UpdateStatus(tx, appointmentID, appointment.Status, entity.AppointmentStatusCancelled)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", appointmentID, err)
		return err
	}
	if rows == 0 {
		return ErrInvalidTransition
	}

	if err := u.auditService.LogAction(tx, &userID, entity.AuditActionAppointmentCancel, "appointment", appointmentID.String(), nil); err != nil {
		u.log.Warnf("Failed to write audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit cancellation of %s: %+v", appointmentID, err)
		return err
	}

	u.log.Infof("Appointment cancelled: id=%s", appointmentID)
	return nil
}

// CompleteAppointment marks a confirmed appointment as completed
func (u *appointmentUsecase) CompleteAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrPrincipalMissing
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	owns := appointment.DoctorID == userID
	if !entity.CanPerform(roleID, entity.ActionAppointmentComplete, owns) {
		return nil, ErrNotAuthorized
	}

	if !appointment.CanTransitionTo(entity.AppointmentStatusCompleted) {
		return nil, ErrInvalidTransition
	}

	rows, err := u.appointmentRepo.UpdateStatus(u.db.WithContext(ctx), appointmentID, entity.AppointmentStatusConfirmed, entity.AppointmentStatusCompleted)
	if err != nil {
		u.log.Warnf("Failed to complete appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrInvalidTransition
	}

	appointment.Status = entity.AppointmentStatusCompleted
	return converter.AppointmentToResponse(appointment), nil
}

// UpdateStatus is the administrative escape hatch: it skips transition
// and ownership rules but still refuses unknown statuses, and a move to
// confirmed still runs the slot conflict check so the one-confirmed-
// per-slot invariant survives corrections.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, appointmentID uuid.UUID, status entity.AppointmentStatus) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrPrincipalMissing
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)

	if !entity.CanPerform(roleID, entity.ActionAppointmentSetStatus, false) {
		return nil, ErrNotAuthorized
	}
	if !entity.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if status == entity.AppointmentStatusConfirmed {
		taken, err := u.appointmentRepo.HasConfirmedAtSlot(tx, appointment.DoctorID, appointment.Date, appointment.Time, appointment.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSlotTaken
		}
	}

	appointment.Status = status
	if err := u.appointmentRepo.Save(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "idx_confirmed_slot") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to set status of %s: %+v", appointmentID, err)
		return nil, err
	}

	if err := u.auditService.LogAction(tx, &userID, entity.AuditActionAppointmentStatus, "appointment", appointmentID.String(), entity.JSON{
		"status": string(status),
	}); err != nil {
		u.log.Warnf("Failed to write audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		if isDuplicateKeyError(err, "idx_confirmed_slot") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to commit status change of %s: %+v", appointmentID, err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// GetAppointments returns every appointment, newest first
func (u *appointmentUsecase) GetAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), nil)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// GetMyAppointments returns the logged-in patient's appointments
func (u *appointmentUsecase) GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrPrincipalMissing
	}

	patient, err := u.patientRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", userID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patient.UserID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for patient %s: %+v", userID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// GetDoctorAppointments returns the logged-in doctor's appointments,
// optionally restricted to one date (YYYY-MM-DD)
func (u *appointmentUsecase) GetDoctorAppointments(ctx context.Context, date string) (*dto.AppointmentListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrPrincipalMissing
	}

	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", userID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	filter := &entity.AppointmentFilter{DoctorID: &doctor.UserID}
	if date != "" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		filter.Date = &day
	}

	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments for doctor %s: %+v", userID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// DeleteAppointment hard-deletes an appointment (admin only)
func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID uuid.UUID) error {
	roleID, _ := middleware.GetRoleIDFromContext(ctx)
	if !entity.CanPerform(roleID, entity.ActionAppointmentDelete, false) {
		return ErrNotAuthorized
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if err := u.appointmentRepo.Delete(u.db.WithContext(ctx), appointmentID); err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", appointmentID, err)
		return err
	}

	u.log.Infof("Appointment deleted: id=%s", appointmentID)
	return nil
}

// generateAppointmentCode builds a unique code: APT-YYYYMMDD-XXXXXX
func generateAppointmentCode(date time.Time) (string, error) {
	randomBytes := make([]byte, 3)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate appointment code: %w", err)
	}
	return fmt.Sprintf("APT-%s-%06X", date.Format("20060102"), randomBytes), nil
}
