package usecase

import (
	"context"
	"errors"

	"hospital-operations-api/internal/converter"
	"hospital-operations-api/internal/delivery/dto"
	"hospital-operations-api/internal/delivery/http/middleware"
	"hospital-operations-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationUsecase interface {
	GetMyNotifications(ctx context.Context) (*dto.NotificationListResponse, error)
	MarkRead(ctx context.Context, notificationID int64) error
}

type notificationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
}

func NewNotificationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	notificationRepo repository.NotificationRepository,
) NotificationUsecase {
	return &notificationUsecase{
		db:               db,
		log:              log,
		notificationRepo: notificationRepo,
	}
}

// GetMyNotifications lists the logged-in user's notifications, newest first
func (u *notificationUsecase) GetMyNotifications(ctx context.Context) (*dto.NotificationListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrPrincipalMissing
	}

	notifications, err := u.notificationRepo.FindByRecipientID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list notifications for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.NotificationListResponse{
		Notifications: converter.NotificationsToResponses(notifications),
		Total:         len(notifications),
	}, nil
}

// MarkRead flips the read flag; the repository guards on recipient so a
// user can only mark their own notifications.
func (u *notificationUsecase) MarkRead(ctx context.Context, notificationID int64) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrPrincipalMissing
	}

	rows, err := u.notificationRepo.MarkRead(u.db.WithContext(ctx), notificationID, userID)
	if err != nil {
		u.log.Warnf("Failed to mark notification %d read: %+v", notificationID, err)
		return err
	}
	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}
