package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"weatherbot.app/pkg/errors"
)

const (
	maxRedisDB         = 15
	maxCacheTTLMinutes = 1440
	maxPortNumber      = 65535
	cityPlaceholder    = "{city}"
)

// Config represents the application configuration structure
type Config struct {
	Server  ServerConfig  `split_words:"true"`
	Weather WeatherConfig `split_words:"true"`
	Scrape  ScrapeConfig  `split_words:"true"`
	Cache   CacheConfig   `split_words:"true"`
	Logging LoggingConfig `split_words:"true"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

type WeatherConfig struct {
	OpenWeatherMapKey     string `envconfig:"OPENWEATHERMAP_API_KEY"`
	OpenWeatherMapBaseURL string `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	DefaultUnits          string `envconfig:"WEATHER_DEFAULT_UNITS" default:"metric"`
	Locale                string `envconfig:"WEATHER_LOCALE" default:"en"`
	Timezone              string `envconfig:"WEATHER_TIMEZONE" default:"Local"`
	CacheTTLMinutes       int    `envconfig:"WEATHER_CACHE_TTL_MINUTES" default:"60"`
	RequestTimeoutSeconds int    `envconfig:"WEATHER_REQUEST_TIMEOUT_SECONDS" default:"20"`
	HTTPTimeoutSeconds    int    `envconfig:"WEATHER_HTTP_TIMEOUT_SECONDS" default:"10"`
	BreakerMaxFailures    int    `envconfig:"WEATHER_BREAKER_MAX_FAILURES" default:"5"`
	BreakerOpenSeconds    int    `envconfig:"WEATHER_BREAKER_OPEN_SECONDS" default:"60"`
	EnableLogging         bool   `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	LogFilePath           string `envconfig:"WEATHER_LOG_FILE_PATH"`
}

// Location resolves the configured presentation time zone
func (w WeatherConfig) Location() (*time.Location, error) {
	if w.Timezone == "" || strings.EqualFold(w.Timezone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(w.Timezone)
	if err != nil {
		return nil, errors.NewConfigurationError(fmt.Sprintf("WEATHER_TIMEZONE %q is not a valid time zone", w.Timezone), err)
	}
	return loc, nil
}

type ScrapeConfig struct {
	Enabled             bool   `envconfig:"SCRAPE_ENABLED" default:"true"`
	URLTemplate         string `envconfig:"SCRAPE_URL_TEMPLATE" default:"https://www.timeanddate.com/weather/?query={city}"`
	TemperatureSelector string `envconfig:"SCRAPE_TEMPERATURE_SELECTOR" default:"#qlook .h2"`
	DescriptionSelector string `envconfig:"SCRAPE_DESCRIPTION_SELECTOR" default:"#qlook p"`
	TimeoutSeconds      int    `envconfig:"SCRAPE_TIMEOUT_SECONDS" default:"30"`
	ChromePath          string `envconfig:"SCRAPE_CHROME_PATH"`
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch strings.ToLower(s) {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type  CacheType   `envconfig:"CACHE_TYPE" default:"memory"`
	Redis RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
	KeyPrefix    string `envconfig:"REDIS_KEY_PREFIX" default:"weatherbot:"`
}

type LoggingConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Scrape.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	return c.Logging.Validate()
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	if strings.TrimSpace(w.OpenWeatherMapKey) == "" {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_KEY must be set", nil)
	}
	if !isHTTPURL(w.OpenWeatherMapBaseURL) {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_BASE_URL must start with http:// or https://", nil)
	}
	if w.DefaultUnits != "metric" && w.DefaultUnits != "imperial" {
		return errors.NewConfigurationError("WEATHER_DEFAULT_UNITS must be one of: metric, imperial", nil)
	}
	if w.Locale != "en" && w.Locale != "ru" {
		return errors.NewConfigurationError("WEATHER_LOCALE must be one of: en, ru", nil)
	}
	if _, err := w.Location(); err != nil {
		return err
	}
	if w.CacheTTLMinutes < 1 || w.CacheTTLMinutes > maxCacheTTLMinutes {
		return errors.NewConfigurationError("WEATHER_CACHE_TTL_MINUTES must be between 1 and 1440 minutes", nil)
	}
	if w.RequestTimeoutSeconds < 0 {
		return errors.NewConfigurationError("WEATHER_REQUEST_TIMEOUT_SECONDS cannot be negative", nil)
	}
	if w.HTTPTimeoutSeconds < 1 {
		return errors.NewConfigurationError("WEATHER_HTTP_TIMEOUT_SECONDS must be at least 1 second", nil)
	}
	if w.BreakerMaxFailures < 1 {
		return errors.NewConfigurationError("WEATHER_BREAKER_MAX_FAILURES must be at least 1", nil)
	}
	if w.BreakerOpenSeconds < 1 {
		return errors.NewConfigurationError("WEATHER_BREAKER_OPEN_SECONDS must be at least 1 second", nil)
	}
	return nil
}

func (s *ScrapeConfig) Validate() error {
	if !s.Enabled {
		return nil
	}
	if !isHTTPURL(s.URLTemplate) {
		return errors.NewConfigurationError("SCRAPE_URL_TEMPLATE must start with http:// or https://", nil)
	}
	if !strings.Contains(s.URLTemplate, cityPlaceholder) {
		return errors.NewConfigurationError("SCRAPE_URL_TEMPLATE must contain the {city} placeholder", nil)
	}
	if strings.TrimSpace(s.TemperatureSelector) == "" || strings.TrimSpace(s.DescriptionSelector) == "" {
		return errors.NewConfigurationError("SCRAPE_TEMPERATURE_SELECTOR and SCRAPE_DESCRIPTION_SELECTOR cannot be empty", nil)
	}
	if s.TimeoutSeconds < 1 {
		return errors.NewConfigurationError("SCRAPE_TIMEOUT_SECONDS must be at least 1 second", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	if strings.ContainsAny(r.KeyPrefix, " \t\r\n") {
		return errors.NewConfigurationError("REDIS_KEY_PREFIX cannot contain whitespace", nil)
	}
	return nil
}

func (l *LoggingConfig) Validate() error {
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return errors.NewConfigurationError("LOG_FORMAT must be one of: json, text", nil)
	}
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
}

func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
