package repository

import (
	"hospital-operations-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(db *gorm.DB, notification *entity.Notification) error
	FindByRecipientID(db *gorm.DB, recipientID uuid.UUID) ([]entity.Notification, error)
	// MarkRead flips the read flag only when the notification belongs to
	// recipientID; returns affected rows.
	MarkRead(db *gorm.DB, id int64, recipientID uuid.UUID) (int64, error)
}
