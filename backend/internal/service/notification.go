package service

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/whisper-dev/whisper/backend/internal/alert"
	"github.com/whisper-dev/whisper/shared/domain"
	"github.com/whisper-dev/whisper/shared/errors"
	"github.com/whisper-dev/whisper/shared/logger"
)

type NotificationService interface {
	Add(viewer *domain.User, data domain.NotificationCreationData) (domain.Notification, error)
	MarkAsRead(id domain.NotificationId)
	View(id domain.NotificationId) (string, error)
	MarkAllAsRead(actor *domain.User) error
	ClearAll(actor *domain.User) error
	List(viewer *domain.User) []domain.Notification
	UnreadCount(viewer *domain.User) int
	Loading() bool
}

type Alerter interface {
	Push(a alert.Alert)
}

// Notification stores notifications for every user; callers only ever see
// the subset owned by the viewer.
type Notification struct {
	mu            sync.RWMutex
	notifications []domain.Notification
	alerter       Alerter
	readyAt       time.Time
	now           func() time.Time
	newId         func() domain.NotificationId
}

func NewNotification(initial []domain.Notification, alerter Alerter, loadDelay time.Duration) *Notification {
	notifications := make([]domain.Notification, len(initial))
	copy(notifications, initial)
	return &Notification{
		notifications: notifications,
		alerter:       alerter,
		readyAt:       time.Now().Add(loadDelay),
		now:           time.Now,
		newId:         uuid.NewString,
	}
}

func (n *Notification) Loading() bool {
	return n.now().Before(n.readyAt)
}

// Add prepends a notification. When it belongs to viewer an alert with a
// "View" action is raised as well.
func (n *Notification) Add(viewer *domain.User, data domain.NotificationCreationData) (domain.Notification, error) {
	if strings.TrimSpace(data.UserId) == "" || strings.TrimSpace(data.Message) == "" {
		return domain.Notification{}, errors.BadRequest("Notification needs a recipient and a message")
	}
	if data.Type == "" {
		data.Type = domain.NotificationSystem
	}
	if !data.Type.Valid() {
		return domain.Notification{}, errors.BadRequest("Unknown notification type")
	}

	notification := domain.Notification{
		Id:        n.newId(),
		UserId:    data.UserId,
		Message:   data.Message,
		Read:      data.Read,
		CreatedAt: n.now(),
		Link:      data.Link,
		Type:      data.Type,
	}

	n.mu.Lock()
	n.notifications = append([]domain.Notification{notification}, n.notifications...)
	n.mu.Unlock()

	notificationsAdded.WithLabelValues(string(notification.Type)).Inc()
	logger.Log.Debug("notification added", "notification_id", notification.Id, "user_id", notification.UserId, "type", notification.Type)

	if viewer != nil && viewer.Id == notification.UserId && n.alerter != nil {
		n.alerter.Push(alert.Alert{
			Kind: alert.Notification,
			Text: notification.Message,
			Action: &alert.Action{
				Label:          "View",
				NotificationId: notification.Id,
				Link:           notification.Link,
			},
		})
	}
	return notification, nil
}

// MarkAsRead is a no-op for unknown ids.
func (n *Notification) MarkAsRead(id domain.NotificationId) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if idx := n.find(id); idx != -1 {
		n.notifications[idx].Read = true
	}
}

// View performs the alert action: mark read and hand back the link to follow.
func (n *Notification) View(id domain.NotificationId) (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	idx := n.find(id)
	if idx == -1 {
		return "", errors.NotFound("Notification not found")
	}
	n.notifications[idx].Read = true
	return n.notifications[idx].Link, nil
}

func (n *Notification) MarkAllAsRead(actor *domain.User) error {
	if actor == nil {
		return errors.LoginRequired("manage notifications")
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	for i := range n.notifications {
		if n.notifications[i].UserId == actor.Id {
			n.notifications[i].Read = true
		}
	}
	return nil
}

func (n *Notification) ClearAll(actor *domain.User) error {
	if actor == nil {
		return errors.LoginRequired("manage notifications")
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	kept := n.notifications[:0]
	removed := 0
	for _, notification := range n.notifications {
		if notification.UserId == actor.Id {
			removed++
			continue
		}
		kept = append(kept, notification)
	}
	n.notifications = kept

	logger.Log.Info("notifications cleared", "user_id", actor.Id, "removed", removed)
	return nil
}

func (n *Notification) List(viewer *domain.User) []domain.Notification {
	out := []domain.Notification{}
	if viewer == nil {
		return out
	}

	n.mu.RLock()
	defer n.mu.RUnlock()

	for _, notification := range n.notifications {
		if notification.UserId == viewer.Id {
			out = append(out, notification)
		}
	}
	return out
}

// UnreadCount is derived on every call, never stored.
func (n *Notification) UnreadCount(viewer *domain.User) int {
	if viewer == nil {
		return 0
	}

	n.mu.RLock()
	defer n.mu.RUnlock()

	count := 0
	for _, notification := range n.notifications {
		if !notification.Read && notification.UserId == viewer.Id {
			count++
		}
	}
	return count
}

// caller holds mu
func (n *Notification) find(id domain.NotificationId) int {
	for i := range n.notifications {
		if n.notifications[i].Id == id {
			return i
		}
	}
	return -1
}
