package service

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whisper-dev/whisper/backend/internal/alert"
	"github.com/whisper-dev/whisper/backend/internal/seed"
	"github.com/whisper-dev/whisper/shared/domain"
	internal_errors "github.com/whisper-dev/whisper/shared/errors"
)

func setupNotification(t *testing.T) (*Notification, *MockAlerter) {
	t.Helper()
	alerter := &MockAlerter{}
	svc := NewNotification(seed.Notifications(time.Now()), alerter, 0)
	svc.newId = sequentialIds("n")
	return svc, alerter
}

func unreadByHand(list []domain.Notification) int {
	count := 0
	for _, n := range list {
		if !n.Read {
			count++
		}
	}
	return count
}

func TestNotificationAdd(t *testing.T) {
	t.Run("for the viewer raises an alert", func(t *testing.T) {
		svc, alerter := setupNotification(t)

		n, err := svc.Add(student, domain.NotificationCreationData{UserId: "1", Message: "New reply", Link: "/messages/7", Type: domain.NotificationReply})
		require.NoError(t, err)
		assert.Equal(t, "n-1", n.Id)
		assert.False(t, n.Read)

		list := svc.List(student)
		require.Len(t, list, 3)
		assert.Equal(t, n.Id, list[0].Id)
		assert.Equal(t, 3, svc.UnreadCount(student))

		require.Len(t, alerter.Alerts, 1)
		a := alerter.Alerts[0]
		assert.Equal(t, alert.Notification, a.Kind)
		assert.Equal(t, "New reply", a.Text)
		require.NotNil(t, a.Action)
		assert.Equal(t, "View", a.Action.Label)
		assert.Equal(t, n.Id, a.Action.NotificationId)
		assert.Equal(t, "/messages/7", a.Action.Link)
	})

	t.Run("for someone else stays silent", func(t *testing.T) {
		svc, alerter := setupNotification(t)

		_, err := svc.Add(student, domain.NotificationCreationData{UserId: "2", Message: "hello admin"})
		require.NoError(t, err)
		assert.Empty(t, alerter.Alerts)
		assert.Len(t, svc.List(student), 2)
		assert.Len(t, svc.List(admin), 1)
	})

	t.Run("without viewer stays silent", func(t *testing.T) {
		svc, alerter := setupNotification(t)
		_, err := svc.Add(nil, domain.NotificationCreationData{UserId: "1", Message: "x"})
		require.NoError(t, err)
		assert.Empty(t, alerter.Alerts)
	})

	t.Run("type defaults to system", func(t *testing.T) {
		svc, _ := setupNotification(t)
		n, err := svc.Add(nil, domain.NotificationCreationData{UserId: "1", Message: "x"})
		require.NoError(t, err)
		assert.Equal(t, domain.NotificationSystem, n.Type)
	})

	t.Run("validation", func(t *testing.T) {
		svc, _ := setupNotification(t)

		_, err := svc.Add(nil, domain.NotificationCreationData{Message: "x"})
		assert.Equal(t, http.StatusBadRequest, internal_errors.StatusCode(err))
		_, err = svc.Add(nil, domain.NotificationCreationData{UserId: "1", Message: " "})
		assert.Equal(t, http.StatusBadRequest, internal_errors.StatusCode(err))
		_, err = svc.Add(nil, domain.NotificationCreationData{UserId: "1", Message: "x", Type: "spam"})
		assert.Equal(t, http.StatusBadRequest, internal_errors.StatusCode(err))

		assert.Len(t, svc.List(student), 2)
	})
}

func TestNotificationRead(t *testing.T) {
	t.Run("mark one", func(t *testing.T) {
		svc, _ := setupNotification(t)
		svc.MarkAsRead("1")
		assert.Equal(t, 1, svc.UnreadCount(student))
		svc.MarkAsRead("1")
		assert.Equal(t, 1, svc.UnreadCount(student))
	})

	t.Run("unknown id is ignored", func(t *testing.T) {
		svc, _ := setupNotification(t)
		svc.MarkAsRead("404")
		assert.Equal(t, 2, svc.UnreadCount(student))
	})

	t.Run("view returns link", func(t *testing.T) {
		svc, _ := setupNotification(t)
		link, err := svc.View("2")
		require.NoError(t, err)
		assert.Equal(t, "/messages/4", link)
		assert.Equal(t, 1, svc.UnreadCount(student))

		_, err = svc.View("404")
		assert.True(t, internal_errors.IsNotFound(err))
	})

	t.Run("mark all only touches the actor", func(t *testing.T) {
		svc, _ := setupNotification(t)
		_, err := svc.Add(nil, domain.NotificationCreationData{UserId: "2", Message: "for admin"})
		require.NoError(t, err)

		require.NoError(t, svc.MarkAllAsRead(student))
		assert.Zero(t, svc.UnreadCount(student))
		assert.Equal(t, 1, svc.UnreadCount(admin))

		assert.Equal(t, http.StatusUnauthorized, internal_errors.StatusCode(svc.MarkAllAsRead(nil)))
	})
}

func TestNotificationClearAll(t *testing.T) {
	svc, _ := setupNotification(t)
	_, err := svc.Add(nil, domain.NotificationCreationData{UserId: "2", Message: "for admin"})
	require.NoError(t, err)

	require.NoError(t, svc.ClearAll(student))
	assert.Empty(t, svc.List(student))
	assert.Zero(t, svc.UnreadCount(student))
	assert.Len(t, svc.List(admin), 1)

	assert.Equal(t, http.StatusUnauthorized, internal_errors.StatusCode(svc.ClearAll(nil)))
}

func TestNotificationUnreadCountMatchesList(t *testing.T) {
	svc, _ := setupNotification(t)
	steps := []func(){
		func() { _, _ = svc.Add(student, domain.NotificationCreationData{UserId: "1", Message: "a"}) },
		func() { svc.MarkAsRead("1") },
		func() { _, _ = svc.Add(nil, domain.NotificationCreationData{UserId: "1", Message: "b", Read: true}) },
		func() { _ = svc.MarkAllAsRead(student) },
		func() { _, _ = svc.Add(nil, domain.NotificationCreationData{UserId: "1", Message: "c"}) },
		func() { _ = svc.ClearAll(student) },
	}
	for _, step := range steps {
		step()
		assert.Equal(t, unreadByHand(svc.List(student)), svc.UnreadCount(student))
	}
}

func TestNotificationNoViewer(t *testing.T) {
	svc, _ := setupNotification(t)
	list := svc.List(nil)
	assert.NotNil(t, list)
	assert.Empty(t, list)
	assert.Zero(t, svc.UnreadCount(nil))
}
