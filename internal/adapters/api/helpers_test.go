package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherbot.app/internal/core/weather"
	"weatherbot.app/internal/mocks"
	"weatherbot.app/internal/ports"
)

type mockWeatherUseCase struct {
	mock.Mock
}

func (m *mockWeatherUseCase) GetWeather(ctx context.Context, request weather.WeatherRequest) (*weather.Report, error) {
	args := m.Called(ctx, request)
	report, _ := args.Get(0).(*weather.Report)
	return report, args.Error(1)
}

type staticHealth map[string]ports.HealthStatus

func (s staticHealth) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	return s
}

type staticStats ports.CacheStats

func (s staticStats) GetStats() ports.CacheStats {
	return ports.CacheStats(s)
}

type serverFixture struct {
	useCase *mockWeatherUseCase
	health  staticHealth
	stats   staticStats
	reg     *prometheus.Registry
}

func newServerFixture() *serverFixture {
	return &serverFixture{
		useCase: &mockWeatherUseCase{},
		health:  staticHealth{"cache": {Component: "cache", Status: "healthy"}},
		stats:   staticStats{Hits: 3, Misses: 1, TotalOps: 4, HitRatio: 0.75},
		reg:     prometheus.NewRegistry(),
	}
}

func (f *serverFixture) router(t *testing.T, useCase WeatherUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)

	server, err := NewHTTPServerAdapter(ServerOptions{
		Config:         ServerConfig{Port: 8080},
		WeatherUseCase: useCase,
		HealthChecker:  f.health,
		CacheStats:     f.stats,
		ProviderName:   "openweathermap",
		Gatherer:       f.reg,
		Logger:         mocks.NewLogger(t).AllowAll(6),
	})
	require.NoError(t, err)
	return server.GetRouter()
}

func perform(router http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	router.ServeHTTP(w, req)
	return w
}
