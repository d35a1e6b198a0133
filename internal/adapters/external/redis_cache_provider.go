package external

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"weatherbot.app/internal/config"
	"weatherbot.app/pkg/errors"
)

// noExpiry is the PTTL reply for a key that exists without a TTL; go-redis passes it through unscaled
const noExpiry = time.Duration(-1)

// RedisCacheProviderAdapter implements CacheProvider on Redis. Keys are stored under
// a namespace so several deployments can share one database, and expiry is delegated
// to Redis key TTLs. A key found without a TTL was not written by this adapter and is
// dropped rather than served forever.
type RedisCacheProviderAdapter struct {
	client    *redis.Client
	namespace string
}

// NewRedisCacheProviderAdapter connects to Redis and verifies the connection within DialTimeout
func NewRedisCacheProviderAdapter(cfg *config.RedisConfig) (*RedisCacheProviderAdapter, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	dialTimeout := time.Duration(cfg.DialTimeout) * time.Second
	if dialTimeout <= 0 {
		dialTimeout = 5 * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewCacheError(fmt.Sprintf("failed to connect to Redis at %s", cfg.Addr), err)
	}

	return &RedisCacheProviderAdapter{
		client:    client,
		namespace: cfg.KeyPrefix,
	}, nil
}

// Get reads the value and its remaining TTL in one round trip
func (r *RedisCacheProviderAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	redisKey, err := r.key(key)
	if err != nil {
		return nil, err
	}

	var value *redis.StringCmd
	var ttl *redis.DurationCmd
	_, err = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		value = pipe.Get(ctx, redisKey)
		ttl = pipe.PTTL(ctx, redisKey)
		return nil
	})
	if err != nil && err != redis.Nil {
		return nil, r.failure("get", key, err)
	}

	data, err := value.Bytes()
	if err == redis.Nil {
		return nil, errors.NewNotFoundError("cache miss")
	}
	if err != nil {
		return nil, r.failure("get", key, err)
	}

	if ttl.Val() == noExpiry {
		if err := r.client.Del(ctx, redisKey).Err(); err != nil {
			return nil, r.failure("delete", key, err)
		}
		return nil, errors.NewNotFoundError("cache entry had no expiry")
	}

	return data, nil
}

// Set stores value with ttl; entries without a positive TTL are rejected
func (r *RedisCacheProviderAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	redisKey, err := r.key(key)
	if err != nil {
		return err
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	// SET PX has millisecond resolution; anything shorter would be stored without expiry
	if ttl < time.Millisecond {
		return errors.NewValidationError("cache TTL must be at least 1ms")
	}

	if err := r.client.Set(ctx, redisKey, value, ttl).Err(); err != nil {
		return r.failure("set", key, err)
	}
	return nil
}

func (r *RedisCacheProviderAdapter) Delete(ctx context.Context, key string) error {
	redisKey, err := r.key(key)
	if err != nil {
		return err
	}

	if err := r.client.Del(ctx, redisKey).Err(); err != nil {
		return r.failure("delete", key, err)
	}
	return nil
}

func (r *RedisCacheProviderAdapter) Exists(ctx context.Context, key string) (bool, error) {
	redisKey, err := r.key(key)
	if err != nil {
		return false, err
	}

	count, err := r.client.Exists(ctx, redisKey).Result()
	if err != nil {
		return false, r.failure("exists", key, err)
	}
	return count > 0, nil
}

// Close closes the Redis client connection
func (r *RedisCacheProviderAdapter) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewCacheError("failed to close Redis connection", err)
	}
	return nil
}

// Ping checks if Redis connection is alive
func (r *RedisCacheProviderAdapter) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewCacheError("Redis ping failed", err)
	}
	return nil
}

func (r *RedisCacheProviderAdapter) key(key string) (string, error) {
	if key == "" {
		return "", errors.NewValidationError("cache key cannot be empty")
	}
	return r.namespace + key, nil
}

func (r *RedisCacheProviderAdapter) failure(op, key string, err error) error {
	return errors.NewCacheError(fmt.Sprintf("redis %s %q failed", op, key), err)
}
