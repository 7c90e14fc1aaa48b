package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-operations-api/internal/converter"
	"hospital-operations-api/internal/delivery/dto"
	"hospital-operations-api/internal/delivery/http/middleware"
	"hospital-operations-api/internal/domain/entity"
	"hospital-operations-api/internal/domain/repository"
	"hospital-operations-api/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBillNotFound         = errors.New("bill not found")
	ErrInvalidPaymentMode   = errors.New("invalid payment mode")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrInvalidAmount        = errors.New("amount must be positive")
)

// billNumberRetries bounds re-sequencing when a bill number collides
// with a row written before the sequence was seeded
const billNumberRetries = 3

type BillingUsecase interface {
	CreateBill(ctx context.Context, req *dto.CreateBillRequest) (*dto.BillResponse, error)
	GetBill(ctx context.Context, billID uuid.UUID) (*dto.BillResponse, error)
	GetAllBills(ctx context.Context) (*dto.BillListResponse, error)
	GetBillsByPatient(ctx context.Context, patientID uuid.UUID) (*dto.BillListResponse, error)
	GetMyBills(ctx context.Context) (*dto.BillListResponse, error)
	UpdatePayment(ctx context.Context, billID uuid.UUID, req *dto.UpdateBillPaymentRequest) (*dto.BillResponse, error)
}

type billingUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	billRepo     repository.BillRepository
	patientRepo  repository.PatientProfileRepository
	billSequence *service.BillSequenceService
	notifier     *service.NotifierService
	auditService service.AuditService
	now          func() time.Time
}

func NewBillingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	billRepo repository.BillRepository,
	patientRepo repository.PatientProfileRepository,
	billSequence *service.BillSequenceService,
	notifier *service.NotifierService,
	auditService service.AuditService,
) BillingUsecase {
	return &billingUsecase{
		db:           db,
		log:          log,
		billRepo:     billRepo,
		patientRepo:  patientRepo,
		billSequence: billSequence,
		notifier:     notifier,
		auditService: auditService,
		now:          time.Now,
	}
}

// CreateBill records a payment as a bill with a consultation service
// line priced at the tax-exclusive base of the paid total. When the
// bill is paid and tied to a doctor, the doctor is notified
// asynchronously; a notification failure never fails the bill.
func (u *billingUsecase) CreateBill(ctx context.Context, req *dto.CreateBillRequest) (*dto.BillResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrPrincipalMissing
	}
	userEmail, _ := middleware.GetUserEmailFromContext(ctx)

	// A patient may only bill their own visit; staff and admin bill anyone
	roleID, _ := middleware.GetRoleIDFromContext(ctx)
	owns := req.PatientID == userID
	if !entity.CanPerform(roleID, entity.ActionBillCreate, owns) {
		return nil, ErrNotAuthorized
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	mode := entity.PaymentMode(req.PaymentMode)
	if !entity.ValidPaymentMode(mode) {
		return nil, ErrInvalidPaymentMode
	}

	status := entity.PaymentStatusPaid
	if req.PaymentStatus != "" {
		status = entity.PaymentStatus(req.PaymentStatus)
		if !entity.ValidPaymentStatus(status) {
			return nil, ErrInvalidPaymentStatus
		}
	}

	patient, err := u.patientRepo.FindByUserID(u.db.WithContext(ctx), req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	// Service line carries the tax-exclusive base; the stored total
	// stays tax-inclusive and the GST split is derived again at render
	// time with identical rounding.
	breakdown := entity.DeriveTax(amount, entity.DefaultTaxRate)

	var bill *entity.Bill
	for attempt := 0; attempt < billNumberRetries; attempt++ {
		seq, err := u.billSequence.Next(ctx, u.now())
		if err != nil {
			u.log.Errorf("Failed to reserve bill sequence: %+v", err)
			return nil, err
		}

		bill = &entity.Bill{
			BillNumber:     service.FormatBillNumber(u.now(), seq),
			PatientID:      patient.UserID,
			AppointmentID:  req.AppointmentID,
			DoctorID:       req.DoctorID,
			TotalAmount:    amount,
			PaymentMode:    mode,
			PaymentStatus:  status,
			PaymentDetails: entity.JSON(req.PaymentDetails),
			Services: []entity.BillService{
				{
					Name:      "Consultation",
					Quantity:  1,
					UnitPrice: breakdown.Base,
					LineTotal: breakdown.Base,
				},
			},
		}

		tx := u.db.WithContext(ctx).Begin()
		err = u.billRepo.Create(tx, bill)
		if err == nil {
			if auditErr := u.auditService.LogAction(tx, &userID, entity.AuditActionBillCreate, "bill", bill.ID.String(), entity.JSON{
				"bill_number": bill.BillNumber,
				"amount":      amount.StringFixed(2),
				"created_by":  userEmail,
			}); auditErr != nil {
				u.log.Warnf("Failed to write audit log: %+v", auditErr)
			}
			err = tx.Commit().Error
		}
		if err == nil {
			break
		}
		tx.Rollback()

		if isDuplicateKeyError(err, "bill_number") {
			u.log.Warnf("Bill number %s collided, re-sequencing", bill.BillNumber)
			continue
		}
		u.log.Errorf("Failed to create bill: %+v", err)
		return nil, err
	}
	if bill == nil || bill.ID == uuid.Nil {
		return nil, errors.New("failed to allocate a unique bill number")
	}

	u.log.Infof("Bill created: number=%s, patient=%s, amount=%s", bill.BillNumber, bill.PatientID, amount.StringFixed(2))

	if status == entity.PaymentStatusPaid && req.DoctorID != nil {
		u.notifier.NotifyDoctorOfPaidBill(*req.DoctorID, bill.ID, bill.BillNumber, req.AppointmentID)
	}

	return converter.BillToResponse(bill), nil
}

func (u *billingUsecase) GetBill(ctx context.Context, billID uuid.UUID) (*dto.BillResponse, error) {
	bill, err := u.billRepo.FindByID(u.db.WithContext(ctx), billID)
	if err != nil {
		u.log.Warnf("Failed to find bill %s: %+v", billID, err)
		return nil, err
	}
	if bill == nil {
		return nil, ErrBillNotFound
	}

	roleID, _ := middleware.GetRoleIDFromContext(ctx)
	userID, _ := middleware.GetUserIDFromContext(ctx)
	owns := bill.PatientID == userID
	if !entity.CanPerform(roleID, entity.ActionBillView, owns) {
		return nil, ErrNotAuthorized
	}

	return converter.BillToResponse(bill), nil
}

func (u *billingUsecase) GetAllBills(ctx context.Context) (*dto.BillListResponse, error) {
	bills, err := u.billRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list bills: %+v", err)
		return nil, err
	}

	return &dto.BillListResponse{
		Bills: converter.BillsToResponses(bills),
		Total: len(bills),
	}, nil
}

func (u *billingUsecase) GetBillsByPatient(ctx context.Context, patientID uuid.UUID) (*dto.BillListResponse, error) {
	bills, err := u.billRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list bills for patient %s: %+v", patientID, err)
		return nil, err
	}

	return &dto.BillListResponse{
		Bills: converter.BillsToResponses(bills),
		Total: len(bills),
	}, nil
}

func (u *billingUsecase) GetMyBills(ctx context.Context) (*dto.BillListResponse, error) {
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

	return u.GetBillsByPatient(ctx, patient.UserID)
}

// UpdatePayment corrects a bill's payment status and mode
func (u *billingUsecase) UpdatePayment(ctx context.Context, billID uuid.UUID, req *dto.UpdateBillPaymentRequest) (*dto.BillResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrPrincipalMissing
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)
	if !entity.CanPerform(roleID, entity.ActionBillUpdatePayment, false) {
		return nil, ErrNotAuthorized
	}

	status := entity.PaymentStatus(req.PaymentStatus)
	if !entity.ValidPaymentStatus(status) {
		return nil, ErrInvalidPaymentStatus
	}
	mode := entity.PaymentMode(req.PaymentMode)
	if !entity.ValidPaymentMode(mode) {
		return nil, ErrInvalidPaymentMode
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	rows, err := u.billRepo.UpdatePayment(tx, billID, status, mode)
	if err != nil {
		u.log.Warnf("Failed to update payment on bill %s: %+v", billID, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrBillNotFound
	}

	if err := u.auditService.LogAction(tx, &userID, entity.AuditActionBillUpdatePayment, "bill", billID.String(), entity.JSON{
		"payment_status": string(status),
		"payment_mode":   string(mode),
	}); err != nil {
		u.log.Warnf("Failed to write audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit payment update on %s: %+v", billID, err)
		return nil, err
	}

	bill, err := u.billRepo.FindByID(u.db.WithContext(ctx), billID)
	if err != nil || bill == nil {
		return nil, ErrBillNotFound
	}
	return converter.BillToResponse(bill), nil
}
