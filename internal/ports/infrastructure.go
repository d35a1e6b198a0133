package ports

import (
	"context"
	"time"
)

// WeatherConfig represents weather resolution configuration
type WeatherConfig struct {
	CacheTTL       time.Duration
	RequestTimeout time.Duration
	DefaultUnits   string
	Locale         string
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// CacheConfig represents cache configuration
type CacheConfig struct {
	Type  string
	Redis RedisConfig
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  int
	ReadTimeout  int
	WriteTimeout int
	KeyPrefix    string
}

// ScrapeConfig represents scrape fallback configuration
type ScrapeConfig struct {
	Enabled             bool
	URLTemplate         string
	TemperatureSelector string
	DescriptionSelector string
	Timeout             time.Duration
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetWeatherConfig() WeatherConfig
	GetServerConfig() ServerConfig
	GetCacheConfig() CacheConfig
	GetScrapeConfig() ScrapeConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordCacheHit(ctx context.Context)
	RecordCacheMiss(ctx context.Context)
	RecordCacheOperation(ctx context.Context, operation string, duration time.Duration)
	RecordProviderCall(ctx context.Context, operation string, success bool)
	RecordFallback(ctx context.Context, outcome string)
	RecordResolution(ctx context.Context, source string, duration time.Duration)
}
