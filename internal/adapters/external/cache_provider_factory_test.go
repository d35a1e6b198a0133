package external

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherbot.app/internal/config"
	"weatherbot.app/pkg/errors"
)

func TestCacheProviderFactory_CreateCacheProvider(t *testing.T) {
	factory := NewCacheProviderFactory(newFakeClock())
	_, redisConfig := setupMockRedis(t)

	tests := []struct {
		name         string
		config       *config.CacheConfig
		expectError  bool
		expectedType string
	}{
		{
			name:        "NilConfig",
			config:      nil,
			expectError: true,
		},
		{
			name:         "MemoryCache",
			config:       &config.CacheConfig{Type: config.CacheTypeMemory},
			expectedType: "*external.MemoryCacheProvider",
		},
		{
			name:         "RedisCache",
			config:       &config.CacheConfig{Type: config.CacheTypeRedis, Redis: *redisConfig},
			expectedType: "*external.RedisCacheProviderAdapter",
		},
		{
			name:        "UnknownCacheType",
			config:      &config.CacheConfig{Type: config.CacheTypeUnknown},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := factory.CreateCacheProvider(tt.config)

			if tt.expectError {
				assert.Error(t, err)
				assert.True(t, errors.IsConfigurationError(err))
				assert.Nil(t, provider)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedType, typeName(provider))
		})
	}
}

func typeName(v interface{}) string {
	return fmt.Sprintf("%T", v)
}
