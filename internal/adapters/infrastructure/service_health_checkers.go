package infrastructure

import (
	"context"
	"time"

	"weatherbot.app/internal/ports"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
	statusDisabled  = "disabled"

	cacheCheckKey = "weather:health-check"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// CacheHealthChecker reports whether the cache backend is reachable
type CacheHealthChecker struct {
	cache     ports.CacheProvider
	cacheType string
}

// NewCacheHealthChecker creates a new cache health checker
func NewCacheHealthChecker(cache ports.CacheProvider, cacheType string) *CacheHealthChecker {
	return &CacheHealthChecker{cache: cache, cacheType: cacheType}
}

// Check pings backends that support it and falls back to an Exists lookup otherwise
func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"type": c.cacheType,
		},
	}

	if c.cache == nil {
		status.Status = statusUnhealthy
		status.Error = "cache is not configured"
		return status
	}

	start := time.Now()
	var err error
	if p, ok := c.cache.(pinger); ok {
		err = p.Ping(ctx)
	} else {
		_, err = c.cache.Exists(ctx, cacheCheckKey)
	}
	status.Details["latency"] = time.Since(start).String()

	if err != nil {
		status.Status = statusUnhealthy
		status.Error = err.Error()
	}
	return status
}

// ProviderHealthChecker reports on the weather provider configuration.
// It never calls the upstream API.
type ProviderHealthChecker struct {
	provider   ports.WeatherProvider
	configured bool
}

// NewProviderHealthChecker creates a new provider health checker
func NewProviderHealthChecker(provider ports.WeatherProvider, apiKeyConfigured bool) *ProviderHealthChecker {
	return &ProviderHealthChecker{provider: provider, configured: apiKeyConfigured}
}

func (p *ProviderHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherProvider",
		Status:    statusHealthy,
		Details:   map[string]interface{}{},
	}

	if p.provider == nil {
		status.Status = statusUnhealthy
		status.Error = "weather provider is not available"
		return status
	}

	status.Details["provider"] = p.provider.GetProviderName()
	status.Details["apiKeyConfigured"] = p.configured
	if !p.configured {
		status.Status = statusUnhealthy
		status.Error = "weather provider API key is not configured"
	}
	return status
}

// ScraperHealthChecker reports whether the scrape fallback is available
type ScraperHealthChecker struct {
	config ports.ScrapeConfig
}

func NewScraperHealthChecker(config ports.ScrapeConfig) *ScraperHealthChecker {
	return &ScraperHealthChecker{config: config}
}

func (s *ScraperHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	if !s.config.Enabled {
		return ports.HealthStatus{Component: "scraper", Status: statusDisabled}
	}
	return ports.HealthStatus{
		Component: "scraper",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"urlTemplate": s.config.URLTemplate,
			"timeout":     s.config.Timeout.String(),
		},
	}
}
