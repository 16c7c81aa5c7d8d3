package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"soccer_team/internal/api/handlers"
	"soccer_team/internal/metrics"
	"soccer_team/internal/repository"
	"soccer_team/internal/service"
	"soccer_team/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	log := logger.Discard()

	registry := prometheus.NewRegistry()
	recorder := metrics.NewPrometheus(registry, "")

	teamRepo := repository.NewTeamRepository(log)
	teamService := service.NewTeamService(teamRepo, recorder, log)
	statsService := service.NewStatsService(repository.NewStatsRepository(teamRepo, log), log)
	handler := handlers.NewHandler(teamService, statsService, log)

	return NewRouter(handler, log, WithMetrics("/metrics", registry))
}

func TestRouter_RequestID(t *testing.T) {
	r := newTestRouter(t)

	t.Run("Generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, w.Header().Get("X-Request-ID"), 36)
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", "req-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	})
}

func TestRouter_Metrics(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/team/get?team_name=ghost", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "soccer_team_roster_players_added_total 0")
}
