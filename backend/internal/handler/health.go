package handler

import (
	"net/http"
)

// Health is a liveness probe endpoint.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// Ready is a readiness probe endpoint.
// Returns 503 Service Unavailable while the stores are still loading.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.message.Loading() || h.notification.Loading() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("loading"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
