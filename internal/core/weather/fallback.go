package weather

import (
	"context"
	stderrors "errors"

	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/errors"
)

// ErrScraperDisabled is reported when no scraper is configured
var ErrScraperDisabled = stderrors.New("scrape fallback is disabled")

// ScrapeFallback extracts current conditions from a public weather page
type ScrapeFallback struct {
	scraper   ports.WeatherScraper
	formatter *Formatter
	logger    ports.Logger
	metrics   ports.MetricsCollector
}

type ScrapeFallbackDependencies struct {
	// Scraper may be nil, in which case every fetch fails with ErrScraperDisabled
	Scraper   ports.WeatherScraper
	Formatter *Formatter
	Logger    ports.Logger
	Metrics   ports.MetricsCollector
}

func NewScrapeFallback(deps ScrapeFallbackDependencies) (*ScrapeFallback, error) {
	if deps.Formatter == nil {
		return nil, errors.NewValidationError("formatter is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &ScrapeFallback{
		scraper:   deps.Scraper,
		formatter: deps.Formatter,
		logger:    deps.Logger,
		metrics:   deps.Metrics,
	}, nil
}

// Fetch scrapes the city's page. Selector misses yield OutcomeNoData with the
// "could not retrieve" sentinel; browser or navigation failures yield OutcomeFailed.
func (f *ScrapeFallback) Fetch(ctx context.Context, city string) Outcome {
	outcome := f.fetch(ctx, city)
	f.metrics.RecordFallback(ctx, outcome.Kind.String())
	return outcome
}

func (f *ScrapeFallback) fetch(ctx context.Context, city string) Outcome {
	if f.scraper == nil {
		return Outcome{Kind: OutcomeFailed, Source: SourceScrape, Err: ErrScraperDisabled}
	}

	scraped, err := f.scraper.Scrape(ctx, city)
	if err != nil {
		f.logger.Error("Scrape fallback failed",
			ports.F("city", city),
			ports.F("error", err.Error()))
		return Outcome{Kind: OutcomeFailed, Source: SourceScrape, Err: err}
	}

	if !scraped.Found() {
		f.logger.Warn("Scrape fallback found no weather data", ports.F("city", city))
		return Outcome{Kind: OutcomeNoData, Text: f.formatter.ScrapeMissing(), Source: SourceScrape}
	}

	return Outcome{
		Kind:   OutcomeData,
		Text:   f.formatter.Scraped(scraped.Temperature, scraped.Description),
		Source: SourceScrape,
	}
}
