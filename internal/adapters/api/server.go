// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherbot.app/internal/core/weather"
	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router         *gin.Engine
	config         ServerConfig
	weatherUseCase WeatherUseCase
	healthChecker  ports.SystemHealthChecker
	cacheStats     CacheStatsProvider
	providerName   string
	logger         ports.Logger
}

// WeatherUseCase is the use case the HTTP adapter depends on
type WeatherUseCase interface {
	GetWeather(ctx context.Context, request weather.WeatherRequest) (*weather.Report, error)
}

// CacheStatsProvider exposes cache counters for /api/metrics
type CacheStatsProvider interface {
	GetStats() ports.CacheStats
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config         ServerConfig
	WeatherUseCase WeatherUseCase
	HealthChecker  ports.SystemHealthChecker
	CacheStats     CacheStatsProvider
	ProviderName   string
	// Gatherer backs the /metrics endpoint; prometheus.DefaultGatherer when nil
	Gatherer prometheus.Gatherer
	Logger   ports.Logger
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	if err := RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), RequestIDMiddleware(), RequestLoggingMiddleware(opts.Logger))

	server := &HTTPServerAdapter{
		router:         router,
		config:         opts.Config,
		weatherUseCase: opts.WeatherUseCase,
		healthChecker:  opts.HealthChecker,
		cacheStats:     opts.CacheStats,
		providerName:   opts.ProviderName,
		logger:         opts.Logger,
	}

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	server.setupRoutes(gatherer)
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.WeatherUseCase == nil {
		return errors.NewValidationError("weather use case is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.CacheStats == nil {
		return errors.NewValidationError("cache stats provider is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes(gatherer prometheus.Gatherer) {
	api := s.router.Group("/api")
	{
		api.GET("/weather", s.getWeather)
		api.GET("/health", s.getHealth)
		api.GET("/metrics", s.getMetrics)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

// Handler returns the router as an http.Handler
func (s *HTTPServerAdapter) Handler() http.Handler {
	return s.router
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
