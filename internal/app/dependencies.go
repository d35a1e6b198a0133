package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"weatherbot.app/internal/adapters/external"
	"weatherbot.app/internal/adapters/infrastructure"
	"weatherbot.app/internal/config"
	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/logger"
)

type DependencyContainer struct {
	config   *config.Config
	registry *prometheus.Registry
	ports    *ports.ApplicationPorts
	location *time.Location

	reportCache *external.InstrumentedReportCache
	closers     []io.Closer
}

// DependencyOptions overrides pieces of the container, mostly for tests
type DependencyOptions struct {
	// Registry receives the Prometheus collectors; a fresh registry when nil
	Registry *prometheus.Registry
	// LogOutput defaults to stdout
	LogOutput io.Writer
	Clock     ports.Clock
}

func NewDependencyContainer(cfg *config.Config, opts DependencyOptions) (*DependencyContainer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	registry := opts.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	container := &DependencyContainer{
		config:   cfg,
		registry: registry,
	}

	if err := container.initializePorts(opts); err != nil {
		_ = container.Close()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts(opts DependencyOptions) error {
	output := opts.LogOutput
	if output == nil {
		output = os.Stdout
	}
	baseLogger := logger.NewWithOptions(output, c.config.Logging.Level, c.config.Logging.Format)
	slog.SetDefault(baseLogger.Logger)

	appLogger := infrastructure.NewSlogLoggerAdapter(baseLogger.Logger)
	callLogger := c.buildCallLogger(appLogger)

	clock := opts.Clock
	if clock == nil {
		clock = ports.SystemClock{}
	}

	location, err := c.config.Weather.Location()
	if err != nil {
		return err
	}
	c.location = location

	configProvider := infrastructure.NewConfigProviderAdapter(c.config)
	metrics := infrastructure.NewPrometheusMetricsCollector(c.registry, c.config.Cache.Type.String())

	cacheProvider, err := external.NewCacheProviderFactory(clock).CreateCacheProvider(&c.config.Cache)
	if err != nil {
		return fmt.Errorf("create cache provider: %w", err)
	}
	if closer, ok := cacheProvider.(io.Closer); ok {
		c.closers = append(c.closers, closer)
	}
	slog.Info("Cache provider initialized",
		"type", c.config.Cache.Type.String(),
		"redis_addr", c.config.Cache.Redis.Addr)

	c.reportCache = external.NewInstrumentedReportCache(
		external.NewReportCacheAdapter(cacheProvider, clock), metrics)

	var provider ports.WeatherProvider = external.NewOpenWeatherMapProviderAdapter(external.OpenWeatherMapProviderParams{
		APIKey:             c.config.Weather.OpenWeatherMapKey,
		BaseURL:            c.config.Weather.OpenWeatherMapBaseURL,
		Timeout:            time.Duration(c.config.Weather.HTTPTimeoutSeconds) * time.Second,
		BreakerMaxFailures: uint32(c.config.Weather.BreakerMaxFailures),
		BreakerOpenTimeout: time.Duration(c.config.Weather.BreakerOpenSeconds) * time.Second,
		Logger:             appLogger,
	})
	if c.config.Weather.EnableLogging {
		provider = external.NewWeatherProviderLoggingDecorator(provider, callLogger)
		slog.Info("Weather provider logging enabled")
	}

	var scraper ports.WeatherScraper
	if c.config.Scrape.Enabled {
		chromedpScraper, err := external.NewChromedpScraper(external.ChromedpScraperParams{
			URLTemplate:         c.config.Scrape.URLTemplate,
			TemperatureSelector: c.config.Scrape.TemperatureSelector,
			DescriptionSelector: c.config.Scrape.DescriptionSelector,
			Timeout:             time.Duration(c.config.Scrape.TimeoutSeconds) * time.Second,
			ChromePath:          c.config.Scrape.ChromePath,
		})
		if err != nil {
			return fmt.Errorf("create scraper: %w", err)
		}
		scraper = chromedpScraper
		if c.config.Weather.EnableLogging {
			scraper = external.NewWeatherScraperLoggingDecorator(scraper, callLogger)
		}
	} else {
		slog.Info("Scrape fallback disabled")
	}

	c.ports = &ports.ApplicationPorts{
		WeatherProvider: provider,
		WeatherScraper:  scraper,
		ReportCache:     c.reportCache,
		CacheProvider:   cacheProvider,
		ConfigProvider:  configProvider,
		Logger:          appLogger,
		Metrics:         metrics,
		Clock:           clock,
	}
	return nil
}

// buildCallLogger tees provider and scraper call logs into the call log file when one is configured
func (c *DependencyContainer) buildCallLogger(appLogger ports.Logger) ports.Logger {
	path := strings.TrimSpace(c.config.Weather.LogFilePath)
	if !c.config.Weather.EnableLogging || path == "" {
		return appLogger
	}

	fileLogger, err := infrastructure.NewFileLoggerAdapter(path, c.config.Logging.Level)
	if err != nil {
		slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		return appLogger
	}
	c.closers = append(c.closers, fileLogger)
	slog.Info("File logging enabled", "path", path)
	return infrastructure.TeeLogger{appLogger, fileLogger}
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Registry() *prometheus.Registry {
	return c.registry
}

func (c *DependencyContainer) Location() *time.Location {
	return c.location
}

func (c *DependencyContainer) ReportCache() *external.InstrumentedReportCache {
	return c.reportCache
}

// Close releases the cache connection and the call log file
func (c *DependencyContainer) Close() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	return firstErr
}
