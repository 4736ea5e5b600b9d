package handler

import (
	"net/http"

	"github.com/whisper-dev/whisper/backend/internal/alert"
	"github.com/whisper-dev/whisper/backend/internal/service"
	"github.com/whisper-dev/whisper/shared/config"
	"github.com/whisper-dev/whisper/shared/errors"
	"github.com/whisper-dev/whisper/shared/i18n"
	"github.com/whisper-dev/whisper/shared/utils"
)

// AlertFeed queues transient alerts until the client drains them.
type AlertFeed interface {
	Push(a alert.Alert)
	Drain() []alert.Alert
}

// ContentRenderer turns stored message text into safe HTML.
type ContentRenderer interface {
	Render(text string) string
}

type Handler struct {
	identity     service.IdentityService
	message      service.MessageService
	notification service.NotificationService
	language     service.LanguageService
	alerts       AlertFeed
	renderer     ContentRenderer
	cfg          *config.Config
}

func New(
	identity service.IdentityService,
	message service.MessageService,
	notification service.NotificationService,
	language service.LanguageService,
	alerts AlertFeed,
	renderer ContentRenderer,
	cfg *config.Config,
) *Handler {
	return &Handler{
		identity:     identity,
		message:      message,
		notification: notification,
		language:     language,
		alerts:       alerts,
		renderer:     renderer,
		cfg:          cfg,
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	utils.WriteJSON(w, http.StatusOK, v)
}

// fail writes err to the response and queues it as an error alert.
func (h *Handler) fail(w http.ResponseWriter, err error) {
	text := err.Error()
	if errors.StatusCode(err) == http.StatusInternalServerError {
		text = "Internal server error"
	}
	h.alerts.Push(alert.Alert{Kind: alert.Error, Text: text})
	utils.WriteErrorAndStatusCode(w, err)
}

// announce queues an alert translated into the active language.
func (h *Handler) announce(kind alert.Kind, key string) {
	h.alerts.Push(alert.Alert{Kind: kind, Text: h.t(key)})
}

func (h *Handler) t(key string) string {
	return i18n.T(h.language.Get(), key)
}
