package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/whisper-dev/whisper/backend/internal/alert"
	"github.com/whisper-dev/whisper/shared/api"
	"github.com/whisper-dev/whisper/shared/domain"
	mw "github.com/whisper-dev/whisper/shared/middleware"
	"github.com/whisper-dev/whisper/shared/utils"
)

func (h *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	viewer := mw.GetUserFromContext(r)
	writeJSON(w, api.NotificationListResponse{
		Notifications: h.notification.List(viewer),
		UnreadCount:   h.notification.UnreadCount(viewer),
		Loading:       h.notification.Loading(),
	})
}

// CreateNotification adds a notification for any user. An alert is raised
// when it is addressed to the current user.
func (h *Handler) CreateNotification(w http.ResponseWriter, r *http.Request) {
	var body api.CreateNotificationRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		h.fail(w, err)
		return
	}

	n, err := h.notification.Add(mw.GetUserFromContext(r), domain.NotificationCreationData{
		UserId:  body.UserId,
		Message: body.Message,
		Read:    body.Read,
		Link:    body.Link,
		Type:    domain.NotificationType(body.Type),
	})
	if err != nil {
		h.fail(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.NotificationResponse{Notification: n})
}

func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	h.notification.MarkAsRead(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) ViewNotification(w http.ResponseWriter, r *http.Request) {
	link, err := h.notification.View(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, api.ViewNotificationResponse{Link: link})
}

func (h *Handler) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	if err := h.notification.MarkAllAsRead(mw.GetUserFromContext(r)); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) ClearNotifications(w http.ResponseWriter, r *http.Request) {
	if err := h.notification.ClearAll(mw.GetUserFromContext(r)); err != nil {
		h.fail(w, err)
		return
	}
	h.announce(alert.Info, "allCleared")
	w.WriteHeader(http.StatusOK)
}
