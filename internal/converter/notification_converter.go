package converter

import (
	"hospital-operations-api/internal/delivery/dto"
	"hospital-operations-api/internal/domain/entity"
)

// NotificationToResponse converts a Notification entity to NotificationResponse DTO
func NotificationToResponse(notification *entity.Notification) *dto.NotificationResponse {
	if notification == nil {
		return nil
	}

	return &dto.NotificationResponse{
		ID:          notification.ID,
		RecipientID: notification.RecipientID,
		Title:       notification.Title,
		Message:     notification.Message,
		Data:        map[string]interface{}(notification.Data),
		Read:        notification.Read,
		CreatedAt:   notification.CreatedAt,
	}
}

// NotificationsToResponses converts a slice of Notification entities to DTOs
func NotificationsToResponses(notifications []entity.Notification) []dto.NotificationResponse {
	responses := make([]dto.NotificationResponse, len(notifications))
	for i, notification := range notifications {
		resp := NotificationToResponse(&notification)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
