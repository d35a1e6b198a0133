package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"weatherbot.app/internal/adapters/api"
	"weatherbot.app/internal/adapters/infrastructure"
	"weatherbot.app/internal/config"
	"weatherbot.app/internal/core/weather"
)

type Application struct {
	config *config.Config
	deps   *DependencyContainer

	weatherUseCase *weather.UseCase

	httpServer *http.Server
	router     *gin.Engine
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(cfg, DependencyOptions{})
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	return NewApplicationWithDependencies(cfg, deps)
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	p := a.deps.ApplicationPorts()
	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		Provider: p.WeatherProvider,
		Scraper:  p.WeatherScraper,
		Cache:    p.ReportCache,
		Config:   p.ConfigProvider,
		Logger:   p.Logger,
		Metrics:  p.Metrics,
		Location: a.deps.Location(),
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	p := a.deps.ApplicationPorts()

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		CacheChecker: infrastructure.NewCacheHealthChecker(p.CacheProvider, a.config.Cache.Type.String()),
		ProviderChecker: infrastructure.NewProviderHealthChecker(p.WeatherProvider,
			strings.TrimSpace(a.config.Weather.OpenWeatherMapKey) != ""),
		ScraperChecker: infrastructure.NewScraperHealthChecker(p.ConfigProvider.GetScrapeConfig()),
		ConfigProvider: p.ConfigProvider,
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config:         api.ServerConfig{Port: a.config.Server.Port},
		WeatherUseCase: a.weatherUseCase,
		HealthChecker:  systemHealthChecker,
		CacheStats:     a.deps.ReportCache(),
		ProviderName:   p.WeatherProvider.GetProviderName(),
		Gatherer:       a.deps.Registry(),
		Logger:         p.Logger,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      httpAdapter.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return nil
}

// Start serves HTTP until the server is shut down
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Close(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetWeatherUseCase returns the weather use case for testing
func (a *Application) GetWeatherUseCase() *weather.UseCase {
	return a.weatherUseCase
}
