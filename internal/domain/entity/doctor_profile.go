package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DoctorProfile represents doctor-specific profile data
type DoctorProfile struct {
	UserID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"user_id"`
	DoctorCode      string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"doctor_code"`
	Specialization  string          `gorm:"type:varchar(100);not null;index" json:"specialization"`
	Department      string          `gorm:"type:varchar(100);not null;index" json:"department"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"consultation_fee"`
	Availability    Availability    `gorm:"embedded;embeddedPrefix:availability_" json:"availability"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
