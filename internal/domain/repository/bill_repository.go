package repository

import (
	"time"

	"hospital-operations-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BillRepository interface {
	Create(db *gorm.DB, bill *entity.Bill) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Bill, error)
	FindAll(db *gorm.DB) ([]entity.Bill, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Bill, error)
	UpdatePayment(db *gorm.DB, id uuid.UUID, status entity.PaymentStatus, mode entity.PaymentMode) (int64, error)
	// CountCreatedBetween counts bills created in [from, to), used to
	// seed the monthly bill sequence.
	CountCreatedBetween(db *gorm.DB, from, to time.Time) (int64, error)
}
