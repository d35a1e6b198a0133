package infrastructure

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetricsCollector implements the MetricsCollector port with Prometheus collectors
type PrometheusMetricsCollector struct {
	cacheType string

	cacheHits       *prometheus.CounterVec
	cacheMisses     *prometheus.CounterVec
	cacheRequests   *prometheus.CounterVec
	cacheLatency    *prometheus.HistogramVec
	cacheHitRatio   *prometheus.GaugeVec
	providerCalls   *prometheus.CounterVec
	fallbacks       *prometheus.CounterVec
	resolutions     *prometheus.CounterVec
	resolutionTimes *prometheus.HistogramVec

	mu     sync.Mutex
	hits   int64
	misses int64
}

// NewPrometheusMetricsCollector registers the weather collectors on reg.
// cacheType labels cache series with the active backend.
func NewPrometheusMetricsCollector(reg prometheus.Registerer, cacheType string) *PrometheusMetricsCollector {
	factory := promauto.With(reg)

	return &PrometheusMetricsCollector{
		cacheType: cacheType,
		cacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_cache_hits_total",
				Help: "The total number of cache hits",
			},
			[]string{"cache_type"},
		),
		cacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_cache_misses_total",
				Help: "The total number of cache misses",
			},
			[]string{"cache_type"},
		),
		cacheRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_cache_requests_total",
				Help: "The total number of cache lookups",
			},
			[]string{"cache_type"},
		),
		cacheLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "weather_cache_duration_seconds",
				Help:    "Cache operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"cache_type", "operation"},
		),
		cacheHitRatio: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "weather_cache_hit_ratio",
				Help: "Cache hit ratio (hits/total lookups)",
			},
			[]string{"cache_type"},
		),
		providerCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_provider_calls_total",
				Help: "Weather provider calls by operation and result",
			},
			[]string{"operation", "success"},
		),
		fallbacks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_scrape_fallbacks_total",
				Help: "Scrape fallback invocations by outcome",
			},
			[]string{"outcome"},
		),
		resolutions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_resolutions_total",
				Help: "Resolved weather requests by answer source",
			},
			[]string{"source"},
		),
		resolutionTimes: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "weather_resolution_duration_seconds",
				Help:    "End-to-end resolution duration in seconds",
				Buckets: []float64{.005, .01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"source"},
		),
	}
}

func (m *PrometheusMetricsCollector) RecordCacheHit(ctx context.Context) {
	m.cacheHits.WithLabelValues(m.cacheType).Inc()
	m.cacheRequests.WithLabelValues(m.cacheType).Inc()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.hits++
	m.updateHitRatio()
}

func (m *PrometheusMetricsCollector) RecordCacheMiss(ctx context.Context) {
	m.cacheMisses.WithLabelValues(m.cacheType).Inc()
	m.cacheRequests.WithLabelValues(m.cacheType).Inc()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.misses++
	m.updateHitRatio()
}

// updateHitRatio must be called while holding the mutex
func (m *PrometheusMetricsCollector) updateHitRatio() {
	total := m.hits + m.misses
	if total > 0 {
		m.cacheHitRatio.WithLabelValues(m.cacheType).Set(float64(m.hits) / float64(total))
	}
}

func (m *PrometheusMetricsCollector) RecordCacheOperation(ctx context.Context, operation string, duration time.Duration) {
	m.cacheLatency.WithLabelValues(m.cacheType, operation).Observe(duration.Seconds())
}

func (m *PrometheusMetricsCollector) RecordProviderCall(ctx context.Context, operation string, success bool) {
	m.providerCalls.WithLabelValues(operation, strconv.FormatBool(success)).Inc()
}

func (m *PrometheusMetricsCollector) RecordFallback(ctx context.Context, outcome string) {
	m.fallbacks.WithLabelValues(outcome).Inc()
}

func (m *PrometheusMetricsCollector) RecordResolution(ctx context.Context, source string, duration time.Duration) {
	m.resolutions.WithLabelValues(source).Inc()
	m.resolutionTimes.WithLabelValues(source).Observe(duration.Seconds())
}
