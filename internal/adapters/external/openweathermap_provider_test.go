package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherbot.app/internal/mocks"
	"weatherbot.app/pkg/errors"
)

func newTestOpenWeatherMap(t *testing.T, baseURL string) *OpenWeatherMapProviderAdapter {
	return NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
		APIKey:             "test-api-key",
		BaseURL:            baseURL,
		Timeout:            2 * time.Second,
		BreakerMaxFailures: 2,
		BreakerOpenTimeout: time.Minute,
		Logger:             mocks.NewLogger(t).AllowAll(4),
	})
}

func TestOpenWeatherMapProvider_GetCurrentWeather_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "New York", r.URL.Query().Get("q"))
		assert.Equal(t, "test-api-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "imperial", r.URL.Query().Get("units"))

		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{
			"name": "New York",
			"dt": 1714554000,
			"main": {"temp": 15.5, "humidity": 78},
			"weather": [{"main": "Rain", "description": "light rain"}]
		}`))
		assert.NoError(t, err)
	}))
	defer mockServer.Close()

	provider := newTestOpenWeatherMap(t, mockServer.URL)
	conditions, err := provider.GetCurrentWeather(context.Background(), "New York", "imperial")

	require.NoError(t, err)
	assert.Equal(t, 15.5, conditions.Temperature)
	assert.Equal(t, "light rain", conditions.Description)
	assert.Equal(t, "New York", conditions.City)
	assert.Equal(t, time.Unix(1714554000, 0), conditions.Timestamp)
}

func TestOpenWeatherMapProvider_GetForecast_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		assert.Equal(t, "metric", r.URL.Query().Get("units"))

		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{
			"cod": "200",
			"list": [
				{"dt": 1714554000, "main": {"temp": 12}, "weather": [{"description": "clear sky"}]},
				{"dt": 1714564800, "main": {"temp": 0}, "weather": [{"description": "frost"}]}
			]
		}`))
		assert.NoError(t, err)
	}))
	defer mockServer.Close()

	provider := newTestOpenWeatherMap(t, mockServer.URL)
	samples, err := provider.GetForecast(context.Background(), "Paris", "metric")

	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, time.Unix(1714554000, 0), samples[0].Time)
	assert.Equal(t, 12.0, samples[0].Temperature)
	assert.Equal(t, "clear sky", samples[0].Description)
	assert.Equal(t, 0.0, samples[1].Temperature)
	assert.Equal(t, "frost", samples[1].Description)
}

func TestOpenWeatherMapProvider_GetCurrentWeather_MalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "EmptyObject", body: `{}`},
		{name: "EmptyWeatherArray", body: `{"name": "London", "main": {"temp": 20}, "weather": []}`},
		{name: "MissingTemperature", body: `{"name": "London", "main": {}, "weather": [{"description": "clear sky"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, err := w.Write([]byte(tt.body))
				assert.NoError(t, err)
			}))
			defer mockServer.Close()

			provider := newTestOpenWeatherMap(t, mockServer.URL)
			conditions, err := provider.GetCurrentWeather(context.Background(), "London", "metric")

			assert.Nil(t, conditions)
			var appErr *errors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, errors.ExternalAPIError, appErr.Type)
			assert.Equal(t, "malformed OpenWeatherMap response", appErr.Message)
		})
	}
}

func TestOpenWeatherMapProvider_GetForecast_SkipsIncompleteSamples(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{
			"list": [
				{"dt": 1714554000, "main": {"temp": 12}, "weather": []},
				{"dt": 1714564800, "main": {}, "weather": [{"description": "mist"}]},
				{"dt": 1714575600, "main": {"temp": 9.5}, "weather": [{"description": "light rain"}]}
			]
		}`))
		assert.NoError(t, err)
	}))
	defer mockServer.Close()

	provider := newTestOpenWeatherMap(t, mockServer.URL)
	samples, err := provider.GetForecast(context.Background(), "Paris", "metric")

	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, time.Unix(1714575600, 0), samples[0].Time)
	assert.Equal(t, 9.5, samples[0].Temperature)
	assert.Equal(t, "light rain", samples[0].Description)
}

func TestOpenWeatherMapProvider_GetForecast_EmptyBody(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{}`))
		assert.NoError(t, err)
	}))
	defer mockServer.Close()

	provider := newTestOpenWeatherMap(t, mockServer.URL)
	samples, err := provider.GetForecast(context.Background(), "Paris", "metric")

	require.NoError(t, err)
	assert.Empty(t, samples)
}

func TestOpenWeatherMapProvider_EmptyCity(t *testing.T) {
	provider := newTestOpenWeatherMap(t, "")

	conditions, err := provider.GetCurrentWeather(context.Background(), "", "metric")
	assert.Nil(t, conditions)
	assert.True(t, errors.IsValidationError(err))

	samples, err := provider.GetForecast(context.Background(), "", "metric")
	assert.Nil(t, samples)
	assert.True(t, errors.IsValidationError(err))
}

func TestOpenWeatherMapProvider_CityNotFound(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte(`{"cod": "404", "message": "city not found"}`))
		assert.NoError(t, err)
	}))
	defer mockServer.Close()

	provider := newTestOpenWeatherMap(t, mockServer.URL)

	for i := 0; i < 3; i++ {
		_, err := provider.GetCurrentWeather(context.Background(), "Atlantis", "metric")
		require.Error(t, err)
		// unknown cities must not trip the breaker
		assert.True(t, errors.IsNotFoundError(err))
	}
}

func TestOpenWeatherMapProvider_APIError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, err := w.Write([]byte(`{"cod": 401, "message": "Invalid API key"}`))
		assert.NoError(t, err)
	}))
	defer mockServer.Close()

	provider := newTestOpenWeatherMap(t, mockServer.URL)
	conditions, err := provider.GetCurrentWeather(context.Background(), "London", "metric")

	assert.Nil(t, conditions)
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ExternalAPIError, appErr.Type)
	assert.Contains(t, appErr.Message, "returned status 401")
}

func TestOpenWeatherMapProvider_InvalidJSON(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{"invalid": json`))
		assert.NoError(t, err)
	}))
	defer mockServer.Close()

	provider := newTestOpenWeatherMap(t, mockServer.URL)
	_, err := provider.GetForecast(context.Background(), "London", "metric")

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ExternalAPIError, appErr.Type)
	assert.Contains(t, appErr.Message, "failed to decode")
}

func TestOpenWeatherMapProvider_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var hits int32
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer mockServer.Close()

	provider := newTestOpenWeatherMap(t, mockServer.URL)

	for i := 0; i < 2; i++ {
		_, err := provider.GetCurrentWeather(context.Background(), "London", "metric")
		require.Error(t, err)
	}

	_, err := provider.GetCurrentWeather(context.Background(), "London", "metric")

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ExternalAPIError, appErr.Type)
	assert.Contains(t, appErr.Message, "circuit breaker open")
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestOpenWeatherMapProvider_CanceledContext(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer mockServer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	provider := newTestOpenWeatherMap(t, mockServer.URL)
	_, err := provider.GetCurrentWeather(ctx, "London", "metric")

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Message, "failed to call OpenWeatherMap")
}

func TestOpenWeatherMapProvider_GetProviderName(t *testing.T) {
	assert.Equal(t, "openweathermap", newTestOpenWeatherMap(t, "").GetProviderName())
}
