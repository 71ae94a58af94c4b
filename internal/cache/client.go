package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Keys for the reference-entity list caches.
const (
	KeySuppliers = "suppliers:list"
	KeyItems     = "items:list"
	KeyUnits     = "units:list"
)

// Client is a read-through JSON cache over Redis. A nil *Client is valid and
// disables caching, so the service runs unchanged without Redis.
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

func Connect(redisURL string, ttl time.Duration) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb, ttl: ttl}, nil
}

// Get unmarshals the cached value into dest and reports whether it was found.
func (c *Client) Get(key string, dest interface{}) bool {
	if c == nil {
		return false
	}
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false
	}
	return true
}

func (c *Client) Set(key string, value interface{}) {
	if c == nil {
		return
	}
	jsonData, err := json.Marshal(value)
	if err != nil {
		return
	}
	ctx := context.Background()
	c.rdb.Set(ctx, key, jsonData, c.ttl)
}

func (c *Client) Invalidate(keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	ctx := context.Background()
	c.rdb.Del(ctx, keys...)
}
