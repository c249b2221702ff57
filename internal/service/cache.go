package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores JSON-encoded values with a per-entry TTL. An entry whose
// age has reached the TTL must never be returned as a hit; whether it is
// evicted or left in place is up to the implementation.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
}

// RedisCache is a Cache backed by a shared Redis instance. Expiry is
// delegated to Redis key TTLs.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a cache on top of an already-connected client.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (s *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		// Cache miss
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get error: %v", err)
	}
	return data, true, nil
}

func (s *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set error: %v", err)
	}
	return nil
}
