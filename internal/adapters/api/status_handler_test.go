package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherbot.app/internal/ports"
)

func TestStatusHandler_Health(t *testing.T) {
	f := newServerFixture()

	w := perform(f.router(t, f.useCase), http.MethodGet, "/api/health")

	assert.Equal(t, http.StatusOK, w.Code)
	var response HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response.Status)
	assert.Contains(t, response.Components, "cache")
}

func TestStatusHandler_HealthUnhealthy(t *testing.T) {
	f := newServerFixture()
	f.health["weatherProvider"] = ports.HealthStatus{Component: "weatherProvider", Status: "unhealthy"}

	w := perform(f.router(t, f.useCase), http.MethodGet, "/api/health")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestStatusHandler_Metrics(t *testing.T) {
	f := newServerFixture()

	w := perform(f.router(t, f.useCase), http.MethodGet, "/api/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	var response MetricsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "openweathermap", response.Provider)
	assert.Equal(t, int64(3), response.Cache.Hits)
	assert.Equal(t, 0.75, response.Cache.HitRatio)
}

func TestStatusHandler_PrometheusEndpoint(t *testing.T) {
	f := newServerFixture()
	promauto.With(f.reg).NewCounter(prometheus.CounterOpts{
		Name: "weather_test_total",
		Help: "test counter",
	}).Inc()

	w := perform(f.router(t, f.useCase), http.MethodGet, "/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "weather_test_total 1")
}

func TestNewHTTPServerAdapter_MissingDependencies(t *testing.T) {
	_, err := NewHTTPServerAdapter(ServerOptions{})
	assert.Error(t, err)
}
