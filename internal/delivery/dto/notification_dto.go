package dto

import (
	"time"

	"github.com/google/uuid"
)

// Response DTOs

type NotificationResponse struct {
	ID          int64                  `json:"id"`
	RecipientID uuid.UUID              `json:"recipient_id"`
	Title       string                 `json:"title"`
	Message     string                 `json:"message"`
	Data        map[string]interface{} `json:"data,omitempty"`
	Read        bool                   `json:"read"`
	CreatedAt   time.Time              `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int                    `json:"total"`
}
