package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whisper-dev/whisper/backend/internal/alert"
)

func TestHealth(t *testing.T) {
	deps := newTestDeps()
	rr := httptest.NewRecorder()
	deps.handler().Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}

func TestReady(t *testing.T) {
	t.Run("returns 200 OK when loaded", func(t *testing.T) {
		deps := newTestDeps()
		rr := httptest.NewRecorder()
		deps.handler().Ready(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "ok", rr.Body.String())
	})

	t.Run("returns 503 while messages load", func(t *testing.T) {
		deps := newTestDeps()
		deps.message.MockLoading = func() bool { return true }
		rr := httptest.NewRecorder()
		deps.handler().Ready(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Equal(t, "loading", rr.Body.String())
	})

	t.Run("returns 503 while notifications load", func(t *testing.T) {
		deps := newTestDeps()
		deps.notification.MockLoading = func() bool { return true }
		rr := httptest.NewRecorder()
		deps.handler().Ready(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}

func TestGetAlerts(t *testing.T) {
	deps := newTestDeps()
	h := deps.handler()

	rr := httptest.NewRecorder()
	h.GetAlerts(rr, httptest.NewRequest(http.MethodGet, "/v1/alerts", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"alerts":[]}`, rr.Body.String())

	deps.alerts.Push(alert.Alert{Kind: alert.Info, Text: "hi"})
	rr = httptest.NewRecorder()
	h.GetAlerts(rr, httptest.NewRequest(http.MethodGet, "/v1/alerts", nil))
	assert.Contains(t, rr.Body.String(), `"text":"hi"`)
	assert.Empty(t, deps.alerts.Drain())
}
