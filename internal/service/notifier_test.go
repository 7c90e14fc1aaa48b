package service

import (
	"errors"
	"io"
	"testing"
	"time"

	"hospital-operations-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type stubDoctorRepo struct {
	profile *entity.DoctorProfile
	err     error
}

func (s *stubDoctorRepo) Create(db *gorm.DB, profile *entity.DoctorProfile) error { return nil }
func (s *stubDoctorRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	return s.profile, s.err
}
func (s *stubDoctorRepo) FindAll(db *gorm.DB) ([]entity.DoctorProfile, error) { return nil, nil }
func (s *stubDoctorRepo) FindByDepartment(db *gorm.DB, department string) ([]entity.DoctorProfile, error) {
	return nil, nil
}
func (s *stubDoctorRepo) Departments(db *gorm.DB) ([]string, error)              { return nil, nil }
func (s *stubDoctorRepo) Update(db *gorm.DB, profile *entity.DoctorProfile) error { return nil }
func (s *stubDoctorRepo) Delete(db *gorm.DB, userID uuid.UUID) error              { return nil }

type stubNotificationRepo struct {
	created chan *entity.Notification
	err     error
}

func (s *stubNotificationRepo) Create(db *gorm.DB, notification *entity.Notification) error {
	s.created <- notification
	return s.err
}
func (s *stubNotificationRepo) FindByRecipientID(db *gorm.DB, recipientID uuid.UUID) ([]entity.Notification, error) {
	return nil, nil
}
func (s *stubNotificationRepo) MarkRead(db *gorm.DB, id int64, recipientID uuid.UUID) (int64, error) {
	return 0, nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// bareDB builds a detached *gorm.DB that supports WithContext without a
// connection. The stub repositories never touch it.
func bareDB() *gorm.DB {
	db := &gorm.DB{Config: &gorm.Config{}}
	db.Statement = &gorm.Statement{DB: db}
	return db
}

func TestNotifyDoctorOfPaidBill_CreatesOneNotification(t *testing.T) {
	doctorUserID := uuid.New()
	billID := uuid.New()
	appointmentID := uuid.New()

	notificationRepo := &stubNotificationRepo{created: make(chan *entity.Notification, 2)}
	doctorRepo := &stubDoctorRepo{profile: &entity.DoctorProfile{UserID: doctorUserID}}
	notifier := NewNotifierService(bareDB(), quietLogger(), notificationRepo, doctorRepo)

	notifier.NotifyDoctorOfPaidBill(doctorUserID, billID, "BILL-2609-0001", &appointmentID)

	var notification *entity.Notification
	select {
	case notification = <-notificationRepo.created:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected a notification to be created")
	}

	if notification.RecipientID != doctorUserID {
		t.Fatalf("expected recipient %s, got %s", doctorUserID, notification.RecipientID)
	}
	if notification.Data["bill_id"] != billID.String() {
		t.Fatalf("expected bill_id %s in data, got %v", billID, notification.Data["bill_id"])
	}
	if notification.Data["appointment_id"] != appointmentID.String() {
		t.Fatalf("expected appointment_id %s in data, got %v", appointmentID, notification.Data["appointment_id"])
	}

	select {
	case extra := <-notificationRepo.created:
		t.Fatalf("expected exactly one notification, got another for %s", extra.RecipientID)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestNotifyDoctorOfPaidBill_UnknownDoctorCreatesNothing(t *testing.T) {
	notificationRepo := &stubNotificationRepo{created: make(chan *entity.Notification, 1)}
	doctorRepo := &stubDoctorRepo{profile: nil}
	notifier := NewNotifierService(bareDB(), quietLogger(), notificationRepo, doctorRepo)

	notifier.NotifyDoctorOfPaidBill(uuid.New(), uuid.New(), "BILL-2609-0002", nil)

	select {
	case <-notificationRepo.created:
		t.Fatalf("expected no notification for an unknown doctor")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestNotifyDoctorOfPaidBill_CreateFailureIsSwallowed(t *testing.T) {
	doctorUserID := uuid.New()
	notificationRepo := &stubNotificationRepo{
		created: make(chan *entity.Notification, 1),
		err:     errors.New("insert failed"),
	}
	doctorRepo := &stubDoctorRepo{profile: &entity.DoctorProfile{UserID: doctorUserID}}
	notifier := NewNotifierService(bareDB(), quietLogger(), notificationRepo, doctorRepo)

	// Returns immediately and must not panic when the insert fails.
	notifier.NotifyDoctorOfPaidBill(doctorUserID, uuid.New(), "BILL-2609-0003", nil)

	select {
	case <-notificationRepo.created:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected the notification insert to be attempted")
	}
}
