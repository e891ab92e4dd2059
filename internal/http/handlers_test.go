package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cuet-dev-corpse/khelile-ayyun/internal/config"
	"github.com/cuet-dev-corpse/khelile-ayyun/internal/duel"
	"github.com/cuet-dev-corpse/khelile-ayyun/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestServer initializes a new server with mock collaborators.
func setupTestServer(t *testing.T, duels duel.DuelStore) *Server {
	t.Helper()

	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)
	metricsHandler := metrics.NewMetricsHandler(reg)

	return NewServer(duels, metricsSvc, metricsHandler, config.Config{})
}

func TestHealthCheckHandler(t *testing.T) {
	server := setupTestServer(t, duel.NewMockStore())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK!", rec.Body.String())
}

func TestListDuelsHandler(t *testing.T) {
	duels := duel.NewMockStore()
	duels.ActiveFunc = func() ([]duel.Duel, error) {
		return []duel.Duel{
			{ID: "d1", GuildID: "guild-1", ChallengerID: "alice", Rating: 1600},
			{ID: "d2", GuildID: "guild-2", ChallengerID: "bob", Rating: 1800},
		}, nil
	}
	server := setupTestServer(t, duels)

	req := httptest.NewRequest(http.MethodGet, "/duels", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var listed []duel.Duel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, "guild-1", listed[0].GuildID)
	assert.Equal(t, 1600, listed[0].Rating)
}

func TestMetricsHandler(t *testing.T) {
	server := setupTestServer(t, duel.NewMockStore())
	server.Metrics.IncCommandsHandled()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "khelile_commands_handled_total 1")
}
