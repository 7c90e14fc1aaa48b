package service

import (
	"hospital-operations-api/internal/domain/entity"
	"hospital-operations-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditService interface {
	LogAction(tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, details entity.JSON) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogAction appends an audit entry on the caller's transaction so the
// trail commits or rolls back together with the operation it records.
func (s *auditService) LogAction(tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, details entity.JSON) error {
	metadata := entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
	}
	for k, v := range details {
		metadata[k] = v
	}

	auditLog := &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
