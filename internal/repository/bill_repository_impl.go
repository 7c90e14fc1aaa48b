package repository

import (
	"errors"
	"time"

	"hospital-operations-api/internal/domain/entity"
	domainRepo "hospital-operations-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type billRepository struct{}

func NewBillRepository() domainRepo.BillRepository {
	return &billRepository{}
}

func (r *billRepository) Create(db *gorm.DB, bill *entity.Bill) error {
	// Service lines are inserted through the association in one go
	return db.Create(bill).Error
}

func (r *billRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Bill, error) {
	var bill entity.Bill
	err := db.Preload("Patient.User").Preload("Services").
		Where("id = ?", id).First(&bill).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bill, nil
}

func (r *billRepository) FindAll(db *gorm.DB) ([]entity.Bill, error) {
	var bills []entity.Bill
	err := db.Preload("Patient.User").Preload("Services").
		Order("created_at DESC").
		Find(&bills).Error
	if err != nil {
		return nil, err
	}
	return bills, nil
}

func (r *billRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Bill, error) {
	var bills []entity.Bill
	err := db.Preload("Services").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&bills).Error
	if err != nil {
		return nil, err
	}
	return bills, nil
}

func (r *billRepository) UpdatePayment(db *gorm.DB, id uuid.UUID, status entity.PaymentStatus, mode entity.PaymentMode) (int64, error) {
	result := db.Model(&entity.Bill{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"payment_status": status,
			"payment_mode":   mode,
		})
	return result.RowsAffected, result.Error
}

func (r *billRepository) CountCreatedBetween(db *gorm.DB, from, to time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Bill{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error
	return count, err
}
