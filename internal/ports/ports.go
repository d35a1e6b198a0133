package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Weather
	WeatherProvider WeatherProvider
	WeatherScraper  WeatherScraper
	ReportCache     ReportCache

	// Cache backend, kept for health checks
	CacheProvider CacheProvider

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        MetricsCollector
	Clock          Clock
}
