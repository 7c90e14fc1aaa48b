package repository

import (
	"time"

	"hospital-operations-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	// ConfirmedTimesOnDate returns the slot times of confirmed
	// appointments for a doctor on a calendar date, ascending.
	ConfirmedTimesOnDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]string, error)
	// HasConfirmedAtSlot reports whether a confirmed appointment other
	// than excludeID already occupies (doctor, date, time).
	HasConfirmedAtSlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, slotTime string, excludeID uuid.UUID) (bool, error)
	// UpdateStatus transitions an appointment only while its current
	// status still matches from; returns affected rows so callers can
	// detect a lost race.
	UpdateStatus(db *gorm.DB, id uuid.UUID, from, to entity.AppointmentStatus) (int64, error)
	Save(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, id uuid.UUID) error
}
