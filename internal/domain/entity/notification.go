package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app message for a user, created as a side
// effect of domain events (e.g. a paid bill awaiting the doctor's
// confirmation). Only the recipient may flip the read flag.
type Notification struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index" json:"recipient_id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	Data        JSON      `gorm:"type:jsonb" json:"data,omitempty"`
	Read        bool      `gorm:"not null;default:false;index" json:"read"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Recipient User `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}
