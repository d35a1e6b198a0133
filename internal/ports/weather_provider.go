package ports

import (
	"context"
	"time"
)

// CurrentConditions is the raw current-weather record returned by a provider
type CurrentConditions struct {
	City        string
	Temperature float64
	Description string
	Timestamp   time.Time
}

// ForecastSample is one point of a provider's multi-point forecast series
type ForecastSample struct {
	Time        time.Time
	Temperature float64
	Description string
}

// WeatherProvider defines the contract for weather data providers.
// Units is passed through to the provider as "metric" or "imperial".
type WeatherProvider interface {
	GetCurrentWeather(ctx context.Context, city, units string) (*CurrentConditions, error)
	GetForecast(ctx context.Context, city, units string) ([]ForecastSample, error)
	GetProviderName() string
}

// ScrapedWeather holds the raw text extracted from a public weather page.
// Empty fields mean the selectors matched nothing.
type ScrapedWeather struct {
	Temperature string
	Description string
}

// Found reports whether both values were extracted
func (s *ScrapedWeather) Found() bool {
	return s != nil && s.Temperature != "" && s.Description != ""
}

// WeatherScraper defines the contract for the page-scraping fallback.
// An error means the browser or navigation failed, not that the page lacked data.
type WeatherScraper interface {
	Scrape(ctx context.Context, city string) (*ScrapedWeather, error)
}
