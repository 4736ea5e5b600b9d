// Package alert holds transient user-visible messages until the client drains them.
package alert

import (
	"sync"
	"time"

	"github.com/whisper-dev/whisper/shared/domain"
)

type Kind string

const (
	Success      Kind = "success"
	Error        Kind = "error"
	Info         Kind = "info"
	Notification Kind = "notification"
)

// Action is attached to notification alerts: viewing marks the
// notification read and follows Link when set.
type Action struct {
	Label          string                `json:"label"`
	NotificationId domain.NotificationId `json:"notification_id"`
	Link           string                `json:"link,omitempty"`
}

type Alert struct {
	Kind      Kind      `json:"kind"`
	Text      string    `json:"text"`
	Action    *Action   `json:"action,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Feed is a bounded FIFO; the oldest alert is dropped when full.
type Feed struct {
	mu      sync.Mutex
	size    int
	pending []Alert
	now     func() time.Time
}

func NewFeed(size int) *Feed {
	if size <= 0 {
		size = 1
	}
	return &Feed{size: size, now: time.Now}
}

func (f *Feed) Push(a Alert) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if a.CreatedAt.IsZero() {
		a.CreatedAt = f.now()
	}
	if len(f.pending) == f.size {
		f.pending = f.pending[1:]
	}
	f.pending = append(f.pending, a)
}

// Drain returns pending alerts oldest first and clears the feed.
func (f *Feed) Drain() []Alert {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := f.pending
	f.pending = nil
	if out == nil {
		return []Alert{}
	}
	return out
}
