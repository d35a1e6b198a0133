package infrastructure

import (
	"context"

	"weatherbot.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers       map[string]ports.HealthChecker
	configProvider ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	CacheChecker    ports.HealthChecker
	ProviderChecker ports.HealthChecker
	ScraperChecker  ports.HealthChecker
	ConfigProvider  ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	checkers := make(map[string]ports.HealthChecker)
	if config.CacheChecker != nil {
		checkers["cache"] = config.CacheChecker
	}
	if config.ProviderChecker != nil {
		checkers["weatherProvider"] = config.ProviderChecker
	}
	if config.ScraperChecker != nil {
		checkers["scraper"] = config.ScraperChecker
	}

	return &SystemHealthChecker{
		checkers:       checkers,
		configProvider: config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers)+1)

	for name, checker := range s.checkers {
		results[name] = checker.Check(ctx)
	}

	if s.configProvider != nil {
		weatherConfig := s.configProvider.GetWeatherConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    statusHealthy,
			Details: map[string]interface{}{
				"locale":       weatherConfig.Locale,
				"defaultUnits": weatherConfig.DefaultUnits,
				"cacheTTL":     weatherConfig.CacheTTL.String(),
			},
		}
	}

	return results
}

// IsHealthy reports whether no component is unhealthy
func IsHealthy(results map[string]ports.HealthStatus) bool {
	for _, status := range results {
		if status.Status == statusUnhealthy {
			return false
		}
	}
	return true
}
