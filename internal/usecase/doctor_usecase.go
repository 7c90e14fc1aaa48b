package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"

	"hospital-operations-api/internal/converter"
	"hospital-operations-api/internal/delivery/dto"
	"hospital-operations-api/internal/delivery/http/middleware"
	"hospital-operations-api/internal/domain/entity"
	"hospital-operations-api/internal/domain/repository"
	"hospital-operations-api/internal/service"
	"hospital-operations-api/pkg/password"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrDoctorEmailExists   = errors.New("email already exists")
	ErrBadAvailability     = errors.New("invalid availability window")
	ErrInvalidFee          = errors.New("consultation fee must not be negative")
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	GetDoctorsByDepartment(ctx context.Context, department string) (*dto.DoctorListResponse, error)
	GetDepartments(ctx context.Context) ([]string, error)
	UpdateDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, doctorID uuid.UUID) error
}

type doctorUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	userRepo        repository.UserRepository
	doctorRepo      repository.DoctorProfileRepository
	passwordService *password.Service
	auditService    service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorProfileRepository,
	passwordService *password.Service,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:              db,
		log:             log,
		userRepo:        userRepo,
		doctorRepo:      doctorRepo,
		passwordService: passwordService,
		auditService:    auditService,
	}
}

// CreateDoctor registers a doctor account with its profile and weekly
// availability window in one insert via the GORM association.
func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	availability := entity.Availability{
		Days:      entity.Weekdays(req.Availability.Days),
		StartTime: req.Availability.StartTime,
		EndTime:   req.Availability.EndTime,
	}
	if err := availability.Validate(); err != nil {
		return nil, ErrBadAvailability
	}

	fee, err := decimal.NewFromString(req.ConsultationFee)
	if err != nil || fee.IsNegative() {
		return nil, ErrInvalidFee
	}

	hashedPassword, err := u.passwordService.Hash(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	doctorCode, err := generateDoctorCode()
	if err != nil {
		u.log.Errorf("Failed to generate doctor code: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctorProfile := &entity.DoctorProfile{
		DoctorCode:      doctorCode,
		Specialization:  req.Specialization,
		Department:      req.Department,
		ConsultationFee: fee,
		Availability:    availability,
		User: entity.User{
			Email:    req.Email,
			Password: hashedPassword,
			FullName: req.FullName,
			RoleID:   entity.RoleIDDoctor,
			IsActive: true,
		},
	}

	if err := u.doctorRepo.Create(tx, doctorProfile); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		if isDuplicateKeyError(err, "email") {
			return nil, ErrDoctorEmailExists
		}
		if isForeignKeyError(err, "role") {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogAction(tx, &userID, entity.AuditActionDoctorCreate, "doctor_profile", doctorProfile.UserID.String(), entity.JSON{
		"department":     req.Department,
		"specialization": req.Specialization,
	}); err != nil {
		u.log.Warnf("Failed to write audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorProfileToResponse(doctorProfile), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	profile, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorProfileToResponse(profile), nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	profiles, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorProfilesToResponses(profiles),
		Total:   len(profiles),
	}, nil
}

func (u *doctorUsecase) GetDoctorsByDepartment(ctx context.Context, department string) (*dto.DoctorListResponse, error) {
	profiles, err := u.doctorRepo.FindByDepartment(u.db.WithContext(ctx), department)
	if err != nil {
		u.log.Warnf("Failed to list doctors for department %s: %+v", department, err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorProfilesToResponses(profiles),
		Total:   len(profiles),
	}, nil
}

func (u *doctorUsecase) GetDepartments(ctx context.Context) ([]string, error) {
	departments, err := u.doctorRepo.Departments(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list departments: %+v", err)
		return nil, err
	}
	return departments, nil
}

// UpdateDoctor updates profile fields; an availability change is
// validated before it replaces the working window.
func (u *doctorUsecase) UpdateDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	profile, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	if req.Specialization != "" {
		profile.Specialization = req.Specialization
	}
	if req.Department != "" {
		profile.Department = req.Department
	}
	if req.ConsultationFee != "" {
		fee, err := decimal.NewFromString(req.ConsultationFee)
		if err != nil || fee.IsNegative() {
			return nil, ErrInvalidFee
		}
		profile.ConsultationFee = fee
	}
	if req.Availability != nil {
		availability := entity.Availability{
			Days:      entity.Weekdays(req.Availability.Days),
			StartTime: req.Availability.StartTime,
			EndTime:   req.Availability.EndTime,
		}
		if err := availability.Validate(); err != nil {
			return nil, ErrBadAvailability
		}
		profile.Availability = availability
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.doctorRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update doctor %s: %+v", doctorID, err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogAction(tx, &userID, entity.AuditActionDoctorUpdate, "doctor_profile", doctorID.String(), nil); err != nil {
		u.log.Warnf("Failed to write audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorProfileToResponse(profile), nil
}

// DeleteDoctor removes the profile and deactivates the login so the
// account cannot authenticate afterwards.
func (u *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID uuid.UUID) error {
	profile, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return err
	}
	if profile == nil {
		return ErrDoctorNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.doctorRepo.Delete(tx, doctorID); err != nil {
		u.log.Warnf("Failed to delete doctor %s: %+v", doctorID, err)
		return err
	}

	profile.User.IsActive = false
	if err := u.userRepo.Update(tx, &profile.User); err != nil {
		u.log.Warnf("Failed to deactivate doctor user %s: %+v", doctorID, err)
		return err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogAction(tx, &userID, entity.AuditActionDoctorDelete, "doctor_profile", doctorID.String(), nil); err != nil {
		u.log.Warnf("Failed to write audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// generateDoctorCode builds a unique code: DOC-XXXXXXXX
func generateDoctorCode() (string, error) {
	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate doctor code: %w", err)
	}
	return fmt.Sprintf("DOC-%08X", randomBytes), nil
}
