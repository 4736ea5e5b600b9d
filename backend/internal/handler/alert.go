package handler

import (
	"net/http"

	"github.com/whisper-dev/whisper/backend/internal/alert"
)

type alertsResponse struct {
	Alerts []alert.Alert `json:"alerts"`
}

// GetAlerts hands pending alerts to the client, oldest first, and clears them.
func (h *Handler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, alertsResponse{Alerts: h.alerts.Drain()})
}
