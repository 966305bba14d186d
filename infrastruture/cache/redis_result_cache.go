package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/beka-birhanu/maze-solver-api/search"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/redis/go-redis/v9"
)

// RedisResultCache stores search results in Redis with TTL support.
// Results are immutable for a given maze and strategy, so entries are
// never invalidated, only expired.
type RedisResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisResultCache initializes a RedisResultCache with the provided Redis client and TTL.
func NewRedisResultCache(client *redis.Client, ttlSeconds int) (i.ResultCache, error) {
	return &RedisResultCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}, nil
}

// Get retrieves a cached search result. A missing key is reported as
// (nil, nil).
func (c *RedisResultCache) Get(ctx context.Context, key string) (*search.Result, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var result search.Result
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Set stores a search result under the given key with the configured TTL.
func (c *RedisResultCache) Set(ctx context.Context, key string, result *search.Result) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, c.ttl).Err()
}
