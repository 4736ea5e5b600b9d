package api

import "github.com/whisper-dev/whisper/shared/domain"

// Request DTOs

type CreateNotificationRequest struct {
	UserId  string `json:"user_id" validate:"required"`
	Message string `json:"message" validate:"required"`
	Read    bool   `json:"read,omitempty"`
	Link    string `json:"link,omitempty"`
	Type    string `json:"type,omitempty" validate:"omitempty,oneof=message reply like system"`
}

// Response DTOs

type NotificationListResponse struct {
	Notifications []domain.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unread_count"`
	Loading       bool                  `json:"loading"`
}

type NotificationResponse struct {
	domain.Notification
}

// ViewNotificationResponse carries the link the client should follow, if any.
type ViewNotificationResponse struct {
	Link string `json:"link,omitempty"`
}
