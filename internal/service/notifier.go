package service

import (
	"context"
	"time"

	"hospital-operations-api/internal/domain/entity"
	"hospital-operations-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const notifyTimeout = 5 * time.Second

// NotifierService creates in-app notifications as a side effect of
// domain events. Every delivery is best-effort: failures are logged and
// swallowed so the triggering operation never fails or waits on them.
type NotifierService struct {
	db               *gorm.DB
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
	doctorRepo       repository.DoctorProfileRepository
}

func NewNotifierService(
	db *gorm.DB,
	log *logrus.Logger,
	notificationRepo repository.NotificationRepository,
	doctorRepo repository.DoctorProfileRepository,
) *NotifierService {
	return &NotifierService{
		db:               db,
		log:              log,
		notificationRepo: notificationRepo,
		doctorRepo:       doctorRepo,
	}
}

// NotifyDoctorOfPaidBill tells the doctor's linked user that a patient
// has paid and the appointment awaits confirmation. Runs in its own
// goroutine with a detached context so bill creation returns
// immediately regardless of the outcome.
func (s *NotifierService) NotifyDoctorOfPaidBill(doctorID uuid.UUID, billID uuid.UUID, billNumber string, appointmentID *uuid.UUID) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		doctor, err := s.doctorRepo.FindByUserID(s.db.WithContext(ctx), doctorID)
		if err != nil {
			s.log.Warnf("Notification skipped, failed to load doctor %s: %+v", doctorID, err)
			return
		}
		if doctor == nil {
			s.log.Warnf("Notification skipped, doctor %s not found", doctorID)
			return
		}

		data := entity.JSON{"bill_id": billID.String()}
		if appointmentID != nil {
			data["appointment_id"] = appointmentID.String()
		}

		notification := &entity.Notification{
			RecipientID: doctor.UserID,
			Title:       "New paid appointment pending confirmation",
			Message:     "A patient has paid for an appointment (Bill " + billNumber + "). Please review and confirm the appointment.",
			Data:        data,
		}

		if err := s.notificationRepo.Create(s.db.WithContext(ctx), notification); err != nil {
			s.log.Warnf("Failed to create notification for doctor %s (non-fatal): %+v", doctorID, err)
			return
		}

		s.log.Infof("Notification created for doctor %s (bill %s)", doctorID, billNumber)
	}()
}
