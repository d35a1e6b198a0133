// Package external provides adapters for external services
// These adapters implement ports for the weather provider, the page scraper and cache backends.
package external

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/errors"
)

const defaultOpenWeatherMapBaseURL = "https://api.openweathermap.org/data/2.5"

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenWeatherMapProviderAdapter implements WeatherProvider port for OpenWeatherMap
type OpenWeatherMapProviderAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	breaker *gobreaker.CircuitBreaker
	logger  ports.Logger
}

// OpenWeatherMapProviderParams holds parameters for creating OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	// BreakerMaxFailures consecutive failures open the breaker for BreakerOpenTimeout
	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration
	Client             HTTPClient
	Logger             ports.Logger
}

type openWeatherMapCondition struct {
	Description string `json:"description"`
}

// Temp is a pointer so a missing field is distinguishable from 0°
type openWeatherMapMain struct {
	Temp *float64 `json:"temp"`
}

// OpenWeatherMapResponse represents the current weather response from OpenWeatherMap API
type OpenWeatherMapResponse struct {
	Name    string                    `json:"name"`
	Dt      int64                     `json:"dt"`
	Main    openWeatherMapMain        `json:"main"`
	Weather []openWeatherMapCondition `json:"weather"`
}

// OpenWeatherMapForecastResponse represents the 5 day / 3 hour forecast response
type OpenWeatherMapForecastResponse struct {
	List []struct {
		Dt      int64                     `json:"dt"`
		Main    openWeatherMapMain        `json:"main"`
		Weather []openWeatherMapCondition `json:"weather"`
	} `json:"list"`
}

type openWeatherMapError struct {
	Message string `json:"message"`
}

// NewOpenWeatherMapProviderAdapter creates a new OpenWeatherMap provider adapter
func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) *OpenWeatherMapProviderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenWeatherMapBaseURL
	}

	client := params.Client
	if client == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}

	maxFailures := params.BreakerMaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	openTimeout := params.BreakerOpenTimeout
	if openTimeout <= 0 {
		openTimeout = time.Minute
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "openweathermap",
		Timeout: openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// an unknown city is an answer, not an outage
		IsSuccessful: func(err error) bool {
			return err == nil || errors.IsNotFoundError(err)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			params.Logger.Warn("Circuit breaker state changed",
				ports.F("breaker", name),
				ports.F("from", from.String()),
				ports.F("to", to.String()))
		},
	})

	return &OpenWeatherMapProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		client:  client,
		breaker: breaker,
		logger:  params.Logger,
	}
}

// GetCurrentWeather retrieves current conditions from OpenWeatherMap
func (p *OpenWeatherMapProviderAdapter) GetCurrentWeather(ctx context.Context, city, units string) (*ports.CurrentConditions, error) {
	if city == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}

	var apiResp OpenWeatherMapResponse
	if err := p.get(ctx, "weather", city, units, &apiResp); err != nil {
		return nil, err
	}

	temperature, description, ok := reading(apiResp.Main, apiResp.Weather)
	if !ok {
		p.logger.Warn("OpenWeatherMap returned incomplete current weather",
			ports.F("city", city),
			ports.F("has_temp", apiResp.Main.Temp != nil),
			ports.F("conditions", len(apiResp.Weather)))
		return nil, errors.NewExternalAPIError("malformed OpenWeatherMap response", nil)
	}

	timestamp := time.Now()
	if apiResp.Dt > 0 {
		timestamp = time.Unix(apiResp.Dt, 0)
	}

	return &ports.CurrentConditions{
		City:        city,
		Temperature: temperature,
		Description: description,
		Timestamp:   timestamp,
	}, nil
}

// GetForecast retrieves the 3-hourly forecast series from OpenWeatherMap
func (p *OpenWeatherMapProviderAdapter) GetForecast(ctx context.Context, city, units string) ([]ports.ForecastSample, error) {
	if city == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}

	var apiResp OpenWeatherMapForecastResponse
	if err := p.get(ctx, "forecast", city, units, &apiResp); err != nil {
		return nil, err
	}

	samples := make([]ports.ForecastSample, 0, len(apiResp.List))
	skipped := 0
	for _, item := range apiResp.List {
		temperature, description, ok := reading(item.Main, item.Weather)
		if !ok {
			skipped++
			continue
		}
		samples = append(samples, ports.ForecastSample{
			Time:        time.Unix(item.Dt, 0),
			Temperature: temperature,
			Description: description,
		})
	}
	if skipped > 0 {
		p.logger.Warn("Skipped incomplete OpenWeatherMap forecast samples",
			ports.F("city", city),
			ports.F("skipped", skipped),
			ports.F("kept", len(samples)))
	}
	return samples, nil
}

// GetProviderName returns the name of this weather provider
func (p *OpenWeatherMapProviderAdapter) GetProviderName() string {
	return "openweathermap"
}

func (p *OpenWeatherMapProviderAdapter) get(ctx context.Context, endpoint, city, units string, out interface{}) error {
	values := url.Values{}
	values.Set("q", city)
	values.Set("appid", p.apiKey)
	values.Set("units", units)
	requestURL := fmt.Sprintf("%s/%s?%s", p.baseURL, endpoint, values.Encode())

	_, err := p.breaker.Execute(func() (interface{}, error) {
		return nil, p.do(ctx, requestURL, out)
	})
	if stderrors.Is(err, gobreaker.ErrOpenState) || stderrors.Is(err, gobreaker.ErrTooManyRequests) {
		return errors.NewExternalAPIError("OpenWeatherMap circuit breaker open", err)
	}
	return err
}

func (p *OpenWeatherMapProviderAdapter) do(ctx context.Context, requestURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return errors.NewExternalAPIError("failed to build OpenWeatherMap request", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.NewExternalAPIError("failed to call OpenWeatherMap", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			p.logger.Warn("Failed to close OpenWeatherMap response body", ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode == http.StatusNotFound {
		var apiErr openWeatherMapError
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		message := apiErr.Message
		if message == "" {
			message = "city not found"
		}
		return errors.NewNotFoundError(message)
	}

	if resp.StatusCode != http.StatusOK {
		return errors.NewExternalAPIError(fmt.Sprintf("OpenWeatherMap returned status %d", resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewExternalAPIError("failed to decode OpenWeatherMap response", err)
	}
	return nil
}

// reading extracts the temperature and first condition; ok is false when either is absent
func reading(main openWeatherMapMain, conditions []openWeatherMapCondition) (float64, string, bool) {
	if main.Temp == nil || len(conditions) == 0 {
		return 0, "", false
	}
	return *main.Temp, conditions[0].Description, true
}
