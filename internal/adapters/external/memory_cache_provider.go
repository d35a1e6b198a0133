package external

import (
	"context"
	"sync"
	"time"

	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/errors"
)

// MemoryCacheProvider is an in-process CacheProvider. Entries expire lazily:
// an entry whose age has reached its TTL is removed by the read that observes it.
type MemoryCacheProvider struct {
	data  map[string]memoryCacheItem
	mutex sync.RWMutex
	clock ports.Clock
}

type memoryCacheItem struct {
	data       []byte
	insertedAt time.Time
	ttl        time.Duration
}

func (i memoryCacheItem) expired(now time.Time) bool {
	return now.Sub(i.insertedAt) >= i.ttl
}

// NewMemoryCacheProvider creates a memory cache. A nil clock means the wall clock.
func NewMemoryCacheProvider(clock ports.Clock) *MemoryCacheProvider {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &MemoryCacheProvider{
		data:  make(map[string]memoryCacheItem),
		clock: clock,
	}
}

func (c *MemoryCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	now := c.clock.Now()

	c.mutex.RLock()
	item, exists := c.data[key]
	c.mutex.RUnlock()

	if !exists {
		return nil, errors.NewNotFoundError("cache miss")
	}
	if item.expired(now) {
		c.evict(key, now)
		return nil, errors.NewNotFoundError("cache miss")
	}

	return item.data, nil
}

// evict removes key if it is still expired at now; a concurrent Set may have replaced it
func (c *MemoryCacheProvider) evict(key string, now time.Time) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if item, exists := c.data[key]; exists && item.expired(now) {
		delete(c.data, key)
	}
}

func (c *MemoryCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = memoryCacheItem{
		data:       value,
		insertedAt: c.clock.Now(),
		ttl:        ttl,
	}

	return nil
}

func (c *MemoryCacheProvider) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

func (c *MemoryCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("cache key cannot be empty")
	}

	now := c.clock.Now()

	c.mutex.RLock()
	item, exists := c.data[key]
	c.mutex.RUnlock()

	if !exists {
		return false, nil
	}
	if item.expired(now) {
		c.evict(key, now)
		return false, nil
	}

	return true, nil
}

// Len returns the number of stored entries, including expired ones no read has observed yet
func (c *MemoryCacheProvider) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}
