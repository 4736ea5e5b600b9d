package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	messagesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "whisper",
			Name:      "messages_created_total",
			Help:      "Messages created, by kind (message|reply) and anonymity",
		},
		[]string{"kind", "anonymous"},
	)

	messageLikes = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "whisper",
			Name:      "message_likes_total",
			Help:      "Likes added to messages and replies",
		},
	)

	messagesDeleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "whisper",
			Name:      "messages_deleted_total",
			Help:      "Messages removed, by level (top|reply)",
		},
		[]string{"level"},
	)

	notificationsAdded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "whisper",
			Name:      "notifications_added_total",
			Help:      "Notifications created, by type",
		},
		[]string{"type"},
	)
)
