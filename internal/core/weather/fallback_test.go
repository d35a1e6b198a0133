package weather

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	mocks "weatherbot.app/internal/mocks"
	"weatherbot.app/internal/ports"
)

func newTestFallback(t *testing.T, scraper ports.WeatherScraper, metrics *mocks.MetricsCollector) *ScrapeFallback {
	fallback, err := NewScrapeFallback(ScrapeFallbackDependencies{
		Scraper:   scraper,
		Formatter: NewFormatter(LocaleEnglish),
		Logger:    mocks.NewLogger(t).AllowAll(2),
		Metrics:   metrics,
	})
	require.NoError(t, err)
	return fallback
}

func TestScrapeFallback_Found(t *testing.T) {
	scraper := mocks.NewWeatherScraper(t)
	metrics := mocks.NewMetricsCollector(t)

	scraper.EXPECT().Scrape(mock.Anything, "Oslo").Return(&ports.ScrapedWeather{
		Temperature: "4 °C",
		Description: "Light snow",
	}, nil).Once()
	metrics.EXPECT().RecordFallback(mock.Anything, "data").Return()

	outcome := newTestFallback(t, scraper, metrics).Fetch(context.Background(), "Oslo")

	assert.Equal(t, OutcomeData, outcome.Kind)
	assert.Equal(t, SourceScrape, outcome.Source)
	assert.Equal(t, "Temperature: 4 °C, Description: Light snow", outcome.Text)
}

func TestScrapeFallback_SelectorMiss(t *testing.T) {
	scraper := mocks.NewWeatherScraper(t)
	metrics := mocks.NewMetricsCollector(t)

	scraper.EXPECT().Scrape(mock.Anything, "Oslo").Return(&ports.ScrapedWeather{Temperature: "4 °C"}, nil)
	metrics.EXPECT().RecordFallback(mock.Anything, "no_data").Return()

	outcome := newTestFallback(t, scraper, metrics).Fetch(context.Background(), "Oslo")

	assert.Equal(t, OutcomeNoData, outcome.Kind)
	assert.Equal(t, "Could not retrieve weather data from the website.", outcome.Text)
}

func TestScrapeFallback_BrowserError(t *testing.T) {
	scraper := mocks.NewWeatherScraper(t)
	metrics := mocks.NewMetricsCollector(t)

	scraper.EXPECT().Scrape(mock.Anything, "Oslo").Return(nil, fmt.Errorf("chrome not found"))
	metrics.EXPECT().RecordFallback(mock.Anything, "failed").Return()

	outcome := newTestFallback(t, scraper, metrics).Fetch(context.Background(), "Oslo")

	assert.Equal(t, OutcomeFailed, outcome.Kind)
	assert.EqualError(t, outcome.Err, "chrome not found")
	assert.Empty(t, outcome.Text)
}

func TestScrapeFallback_Disabled(t *testing.T) {
	metrics := mocks.NewMetricsCollector(t)
	metrics.EXPECT().RecordFallback(mock.Anything, "failed").Return()

	outcome := newTestFallback(t, nil, metrics).Fetch(context.Background(), "Oslo")

	assert.Equal(t, OutcomeFailed, outcome.Kind)
	assert.ErrorIs(t, outcome.Err, ErrScraperDisabled)
}
