package external

import (
	"context"
	"sync/atomic"
	"time"

	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/errors"
)

// InstrumentedReportCache records hits, misses and latency of a ReportCache
type InstrumentedReportCache struct {
	cache   ports.ReportCache
	metrics ports.MetricsCollector
	hits    int64
	misses  int64
}

func NewInstrumentedReportCache(cache ports.ReportCache, metrics ports.MetricsCollector) *InstrumentedReportCache {
	return &InstrumentedReportCache{
		cache:   cache,
		metrics: metrics,
	}
}

func (c *InstrumentedReportCache) Get(ctx context.Context, key string) (string, error) {
	start := time.Now()
	text, err := c.cache.Get(ctx, key)
	c.metrics.RecordCacheOperation(ctx, "get", time.Since(start))

	switch {
	case err == nil:
		atomic.AddInt64(&c.hits, 1)
		c.metrics.RecordCacheHit(ctx)
	case errors.IsNotFoundError(err):
		atomic.AddInt64(&c.misses, 1)
		c.metrics.RecordCacheMiss(ctx)
	}

	return text, err
}

func (c *InstrumentedReportCache) Set(ctx context.Context, key string, text string, ttl time.Duration) error {
	start := time.Now()
	err := c.cache.Set(ctx, key, text, ttl)
	c.metrics.RecordCacheOperation(ctx, "set", time.Since(start))
	return err
}

// GetStats returns hit and miss counts since startup
func (c *InstrumentedReportCache) GetStats() ports.CacheStats {
	hits := atomic.LoadInt64(&c.hits)
	misses := atomic.LoadInt64(&c.misses)

	total := hits + misses
	hitRatio := float64(0)
	if total > 0 {
		hitRatio = float64(hits) / float64(total)
	}

	return ports.CacheStats{
		Hits:        hits,
		Misses:      misses,
		TotalOps:    total,
		HitRatio:    hitRatio,
		LastUpdated: time.Now(),
	}
}
