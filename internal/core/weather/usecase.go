package weather

import (
	"context"
	"time"

	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/errors"
)

type UseCase struct {
	provider  *ProviderClient
	fallback  *ScrapeFallback
	formatter *Formatter
	cache     ports.ReportCache
	config    ports.ConfigProvider
	logger    ports.Logger
	metrics   ports.MetricsCollector
}

type UseCaseDependencies struct {
	Provider ports.WeatherProvider
	// Scraper is optional; without it the fallback always fails
	Scraper  ports.WeatherScraper
	Cache    ports.ReportCache
	Config   ports.ConfigProvider
	Logger   ports.Logger
	Metrics  ports.MetricsCollector
	Location *time.Location
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Cache == nil {
		return nil, errors.NewValidationError("cache is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}

	formatter := NewFormatter(ParseLocale(deps.Config.GetWeatherConfig().Locale))

	provider, err := NewProviderClient(ProviderClientDependencies{
		Provider:  deps.Provider,
		Formatter: formatter,
		Location:  deps.Location,
		Logger:    deps.Logger,
		Metrics:   deps.Metrics,
	})
	if err != nil {
		return nil, err
	}

	fallback, err := NewScrapeFallback(ScrapeFallbackDependencies{
		Scraper:   deps.Scraper,
		Formatter: formatter,
		Logger:    deps.Logger,
		Metrics:   deps.Metrics,
	})
	if err != nil {
		return nil, err
	}

	return &UseCase{
		provider:  provider,
		fallback:  fallback,
		formatter: formatter,
		cache:     deps.Cache,
		config:    deps.Config,
		logger:    deps.Logger,
		metrics:   deps.Metrics,
	}, nil
}

// GetWeather resolves a request into localized weather text.
// Only validation errors are returned; upstream failures become the unavailable message.
func (uc *UseCase) GetWeather(ctx context.Context, request WeatherRequest) (*Report, error) {
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid weather request: " + err.Error())
	}

	weatherConfig := uc.config.GetWeatherConfig()
	defaultUnits, err := ParseUnits(weatherConfig.DefaultUnits, UnitsMetric)
	if err != nil {
		defaultUnits = UnitsMetric
	}
	request.Normalize(defaultUnits)

	if weatherConfig.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, weatherConfig.RequestTimeout)
		defer cancel()
	}

	start := time.Now()
	report := uc.resolve(ctx, request, weatherConfig.CacheTTL)
	uc.metrics.RecordResolution(ctx, string(report.Source), time.Since(start))

	uc.logger.Debug("Weather resolved",
		ports.F("city", request.City),
		ports.F("days", request.Days),
		ports.F("units", string(request.Units)),
		ports.F("source", string(report.Source)),
		ports.F("cached", report.Cached))
	return report, nil
}

func (uc *UseCase) resolve(ctx context.Context, request WeatherRequest, ttl time.Duration) *Report {
	report := &Report{
		City:  request.City,
		Days:  request.Days,
		Units: request.Units,
	}

	key := request.CacheKey()
	cached, err := uc.cache.Get(ctx, key)
	if err == nil {
		report.Text = cached
		report.Source = SourceCache
		report.Cached = true
		return report
	}
	if !errors.IsNotFoundError(err) {
		uc.logger.Warn("Cache lookup failed, treating as miss",
			ports.F("key", key),
			ports.F("error", err.Error()))
	}

	outcome := uc.fetch(ctx, request)
	if outcome.HasData() {
		if cacheErr := uc.cache.Set(ctx, key, outcome.Text, ttl); cacheErr != nil {
			uc.logger.Warn("Failed to cache weather text",
				ports.F("key", key),
				ports.F("error", cacheErr.Error()))
		}
	}

	report.Text = outcome.Text
	report.Source = outcome.Source
	return report
}

func (uc *UseCase) fetch(ctx context.Context, request WeatherRequest) Outcome {
	if request.Days > 1 {
		outcome := uc.provider.ForecastWeather(ctx, request.City, request.Days, request.Units)
		if outcome.HasData() {
			return outcome
		}
		return uc.unavailable()
	}

	outcome := uc.provider.CurrentWeather(ctx, request.City, request.Units)
	if outcome.HasData() {
		return outcome
	}

	outcome = uc.fallback.Fetch(ctx, request.City)
	switch outcome.Kind {
	case OutcomeData, OutcomeNoData:
		return outcome
	default:
		if outcome.Err != nil {
			uc.logger.Warn("All weather sources failed",
				ports.F("city", request.City),
				ports.F("error", outcome.Err.Error()))
		}
		return uc.unavailable()
	}
}

func (uc *UseCase) unavailable() Outcome {
	return Outcome{Kind: OutcomeFailed, Text: uc.formatter.Unavailable(), Source: SourceNone}
}
