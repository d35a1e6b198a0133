package external

import (
	"fmt"

	"weatherbot.app/internal/config"
	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/errors"
)

type CacheProviderFactory struct {
	clock ports.Clock
}

// NewCacheProviderFactory creates a factory; clock drives expiry of the memory backend
func NewCacheProviderFactory(clock ports.Clock) *CacheProviderFactory {
	return &CacheProviderFactory{clock: clock}
}

func (f *CacheProviderFactory) CreateCacheProvider(cfg *config.CacheConfig) (ports.CacheProvider, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("cache config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.CacheTypeMemory:
		return NewMemoryCacheProvider(f.clock), nil
	case config.CacheTypeRedis:
		provider, err := NewRedisCacheProviderAdapter(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return provider, nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported cache type: %s", cfg.Type.String()), nil)
	}
}
