package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMode represents how a bill was paid
type PaymentMode string

const (
	PaymentModeCash      PaymentMode = "Cash"
	PaymentModeCard      PaymentMode = "Card"
	PaymentModeUPI       PaymentMode = "UPI"
	PaymentModeQR        PaymentMode = "QR"
	PaymentModeInsurance PaymentMode = "Insurance"
)

// PaymentStatus represents the settlement state of a bill
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusFailed  PaymentStatus = "Failed"
	PaymentStatusPartial PaymentStatus = "Partial"
)

// ValidPaymentMode reports whether m is a member of the payment mode enum
func ValidPaymentMode(m PaymentMode) bool {
	switch m {
	case PaymentModeCash, PaymentModeCard, PaymentModeUPI, PaymentModeQR, PaymentModeInsurance:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is a member of the payment status enum
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusPending, PaymentStatusFailed, PaymentStatusPartial:
		return true
	}
	return false
}

// Bill represents a tax-inclusive bill for rendered services.
// Tax components are derived on read via TaxComponents, never stored.
type Bill struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BillNumber     string        `gorm:"type:varchar(50);uniqueIndex;not null" json:"bill_number"`
	PatientID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"patient_id"`
	AppointmentID  *uuid.UUID    `gorm:"type:uuid;index" json:"appointment_id,omitempty"`
	DoctorID       *uuid.UUID    `gorm:"type:uuid;index" json:"doctor_id,omitempty"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	PaymentMode    PaymentMode   `gorm:"type:varchar(20);not null" json:"payment_mode"`
	PaymentStatus  PaymentStatus `gorm:"type:varchar(20);not null;default:'Pending';index" json:"payment_status"`
	PaymentDetails JSON          `gorm:"type:jsonb" json:"payment_details,omitempty"`
	CreatedAt      time.Time     `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt      time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient  PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Services []BillService  `gorm:"foreignKey:BillID" json:"services,omitempty"`
}

func (Bill) TableName() string {
	return "bills"
}

// BillService is one service line on a bill
type BillService struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	BillID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"bill_id"`
	Name      string          `gorm:"type:varchar(255);not null" json:"name"`
	Quantity  int             `gorm:"not null;default:1" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	LineTotal decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"line_total"`
}

func (BillService) TableName() string {
	return "bill_services"
}

// DefaultTaxRate is the GST rate embedded in tax-inclusive totals
var DefaultTaxRate = decimal.NewFromFloat(0.18)

// TaxBreakdown is the derived split of a tax-inclusive total.
// Each component is rounded to 2 places independently, so
// Base + CGST + SGST may differ from the original total by up to one
// cent. That drift is accepted, not re-normalized away.
type TaxBreakdown struct {
	Base decimal.Decimal `json:"base_amount"`
	CGST decimal.Decimal `json:"cgst"`
	SGST decimal.Decimal `json:"sgst"`
}

// TotalTax returns the combined tax amount
func (t TaxBreakdown) TotalTax() decimal.Decimal {
	return t.CGST.Add(t.SGST)
}

// DeriveTax back-calculates the base amount and the two equal tax halves
// from a tax-inclusive total. Pure and deterministic: bill creation and
// invoice rendering both call it so the figures always agree.
func DeriveTax(totalInclusive, rate decimal.Decimal) TaxBreakdown {
	one := decimal.NewFromInt(1)
	two := decimal.NewFromInt(2)

	base := totalInclusive.Div(one.Add(rate))
	half := base.Mul(rate).Div(two)

	return TaxBreakdown{
		Base: base.Round(2),
		CGST: half.Round(2),
		SGST: half.Round(2),
	}
}

// TaxComponents derives the GST split for this bill at the default rate
func (b *Bill) TaxComponents() TaxBreakdown {
	return DeriveTax(b.TotalAmount, DefaultTaxRate)
}
