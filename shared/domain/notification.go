package domain

import "time"

type NotificationType string

const (
	NotificationMessage NotificationType = "message"
	NotificationReply   NotificationType = "reply"
	NotificationLike    NotificationType = "like"
	NotificationSystem  NotificationType = "system"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationMessage, NotificationReply, NotificationLike, NotificationSystem:
		return true
	}
	return false
}

// Notification is visible only to UserId.
type Notification struct {
	Id        NotificationId   `json:"id"`
	UserId    UserId           `json:"user_id"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
	Link      string           `json:"link,omitempty"`
	Type      NotificationType `json:"type"`
}

type NotificationCreationData struct {
	UserId  UserId
	Message string
	Read    bool
	Link    string
	Type    NotificationType
}
