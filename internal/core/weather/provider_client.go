package weather

import (
	"context"
	"fmt"
	"time"

	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/errors"
)

const (
	operationCurrent  = "current"
	operationForecast = "forecast"
)

// ProviderClient turns provider records into localized text.
// Upstream failures are reported as OutcomeNoData, never as errors.
type ProviderClient struct {
	provider  ports.WeatherProvider
	formatter *Formatter
	location  *time.Location
	logger    ports.Logger
	metrics   ports.MetricsCollector
}

type ProviderClientDependencies struct {
	Provider  ports.WeatherProvider
	Formatter *Formatter
	Location  *time.Location
	Logger    ports.Logger
	Metrics   ports.MetricsCollector
}

func NewProviderClient(deps ProviderClientDependencies) (*ProviderClient, error) {
	if deps.Provider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}
	if deps.Formatter == nil {
		return nil, errors.NewValidationError("formatter is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	location := deps.Location
	if location == nil {
		location = time.Local
	}

	return &ProviderClient{
		provider:  deps.Provider,
		formatter: deps.Formatter,
		location:  location,
		logger:    deps.Logger,
		metrics:   deps.Metrics,
	}, nil
}

// CurrentWeather returns the current conditions line for the city
func (c *ProviderClient) CurrentWeather(ctx context.Context, city string, units Units) Outcome {
	conditions, err := c.provider.GetCurrentWeather(ctx, city, string(units))
	c.metrics.RecordProviderCall(ctx, operationCurrent, err == nil)
	if err != nil {
		c.logger.Warn("Current weather unavailable from provider",
			ports.F("provider", c.provider.GetProviderName()),
			ports.F("city", city),
			ports.F("error", err.Error()))
		return Outcome{Kind: OutcomeNoData, Source: SourceProvider, Err: err}
	}
	if conditions == nil {
		return Outcome{Kind: OutcomeNoData, Source: SourceProvider, Err: fmt.Errorf("provider returned no conditions")}
	}

	return Outcome{
		Kind:   OutcomeData,
		Text:   c.formatter.Current(city, conditions.Temperature, conditions.Description, units),
		Source: SourceProvider,
	}
}

// ForecastWeather returns the multi-day forecast text limited to days dates
func (c *ProviderClient) ForecastWeather(ctx context.Context, city string, days int, units Units) Outcome {
	samples, err := c.provider.GetForecast(ctx, city, string(units))
	c.metrics.RecordProviderCall(ctx, operationForecast, err == nil)
	if err != nil {
		c.logger.Warn("Forecast unavailable from provider",
			ports.F("provider", c.provider.GetProviderName()),
			ports.F("city", city),
			ports.F("error", err.Error()))
		return Outcome{Kind: OutcomeNoData, Source: SourceProvider, Err: err}
	}

	buckets := BucketForecast(samples, days, c.location)
	if len(buckets) == 0 {
		c.logger.Warn("Provider returned an empty forecast", ports.F("city", city))
		return Outcome{Kind: OutcomeNoData, Source: SourceProvider, Err: fmt.Errorf("empty forecast for %s", city)}
	}
	if len(buckets) < days {
		c.logger.Debug("Forecast shorter than requested",
			ports.F("city", city),
			ports.F("requested_days", days),
			ports.F("available_days", len(buckets)))
	}

	return Outcome{
		Kind:   OutcomeData,
		Text:   c.formatter.Forecast(city, buckets, units),
		Source: SourceProvider,
	}
}
