package external

import (
	"context"
	"time"

	"weatherbot.app/internal/ports"
)

// WeatherProviderLoggingDecorator decorates weather providers with structured logging
type WeatherProviderLoggingDecorator struct {
	provider ports.WeatherProvider
	logger   ports.Logger
}

// NewWeatherProviderLoggingDecorator creates a new logging decorator for weather providers
func NewWeatherProviderLoggingDecorator(provider ports.WeatherProvider, logger ports.Logger) ports.WeatherProvider {
	return &WeatherProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// GetCurrentWeather wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) GetCurrentWeather(ctx context.Context, city, units string) (*ports.CurrentConditions, error) {
	providerName := d.provider.GetProviderName()
	d.logRequest(providerName, "current", city, units)

	startTime := time.Now()
	conditions, err := d.provider.GetCurrentWeather(ctx, city, units)
	duration := time.Since(startTime)

	if err != nil {
		d.logFailure(providerName, "current", city, duration, err)
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", providerName),
		ports.F("operation", "current"),
		ports.F("city", city),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("temperature", conditions.Temperature),
		ports.F("description", conditions.Description))

	return conditions, nil
}

// GetForecast wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) GetForecast(ctx context.Context, city, units string) ([]ports.ForecastSample, error) {
	providerName := d.provider.GetProviderName()
	d.logRequest(providerName, "forecast", city, units)

	startTime := time.Now()
	samples, err := d.provider.GetForecast(ctx, city, units)
	duration := time.Since(startTime)

	if err != nil {
		d.logFailure(providerName, "forecast", city, duration, err)
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", providerName),
		ports.F("operation", "forecast"),
		ports.F("city", city),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("samples", len(samples)))

	return samples, nil
}

// GetProviderName returns the name of the wrapped provider
func (d *WeatherProviderLoggingDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}

func (d *WeatherProviderLoggingDecorator) logRequest(providerName, operation, city, units string) {
	d.logger.Info("Weather API request started",
		ports.F("provider", providerName),
		ports.F("operation", operation),
		ports.F("city", city),
		ports.F("units", units),
		ports.F("event", "request"))
}

func (d *WeatherProviderLoggingDecorator) logFailure(providerName, operation, city string, duration time.Duration, err error) {
	d.logger.Error("Weather API request failed",
		ports.F("provider", providerName),
		ports.F("operation", operation),
		ports.F("city", city),
		ports.F("event", "error"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("error", err.Error()))
}

// WeatherScraperLoggingDecorator decorates the page scraper with structured logging
type WeatherScraperLoggingDecorator struct {
	scraper ports.WeatherScraper
	logger  ports.Logger
}

// NewWeatherScraperLoggingDecorator creates a new logging decorator for the scraper
func NewWeatherScraperLoggingDecorator(scraper ports.WeatherScraper, logger ports.Logger) ports.WeatherScraper {
	return &WeatherScraperLoggingDecorator{
		scraper: scraper,
		logger:  logger,
	}
}

// Scrape wraps the scraper call with structured logging
func (d *WeatherScraperLoggingDecorator) Scrape(ctx context.Context, city string) (*ports.ScrapedWeather, error) {
	d.logger.Info("Weather scrape started",
		ports.F("city", city),
		ports.F("event", "scrape_start"))

	startTime := time.Now()
	scraped, err := d.scraper.Scrape(ctx, city)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Weather scrape failed",
			ports.F("city", city),
			ports.F("event", "scrape_error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Weather scrape completed",
		ports.F("city", city),
		ports.F("event", "scrape_success"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("found", scraped.Found()))

	return scraped, nil
}
