package infrastructure

import (
	"time"

	"weatherbot.app/internal/config"
	"weatherbot.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

// GetWeatherConfig returns weather resolution configuration
func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	return ports.WeatherConfig{
		CacheTTL:       time.Duration(c.config.Weather.CacheTTLMinutes) * time.Minute,
		RequestTimeout: time.Duration(c.config.Weather.RequestTimeoutSeconds) * time.Second,
		DefaultUnits:   c.config.Weather.DefaultUnits,
		Locale:         c.config.Weather.Locale,
	}
}

// GetCacheConfig returns cache configuration
func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	return ports.CacheConfig{
		Type: c.config.Cache.Type.String(),
		Redis: ports.RedisConfig{
			Addr:         c.config.Cache.Redis.Addr,
			Password:     c.config.Cache.Redis.Password,
			DB:           c.config.Cache.Redis.DB,
			DialTimeout:  c.config.Cache.Redis.DialTimeout,
			ReadTimeout:  c.config.Cache.Redis.ReadTimeout,
			WriteTimeout: c.config.Cache.Redis.WriteTimeout,
			KeyPrefix:    c.config.Cache.Redis.KeyPrefix,
		},
	}
}

// GetScrapeConfig returns scrape fallback configuration
func (c *ConfigProviderAdapter) GetScrapeConfig() ports.ScrapeConfig {
	return ports.ScrapeConfig{
		Enabled:             c.config.Scrape.Enabled,
		URLTemplate:         c.config.Scrape.URLTemplate,
		TemperatureSelector: c.config.Scrape.TemperatureSelector,
		DescriptionSelector: c.config.Scrape.DescriptionSelector,
		Timeout:             time.Duration(c.config.Scrape.TimeoutSeconds) * time.Second,
	}
}
