// Package redis implements the Cache port on a Redis server.
package redis

import (
	"context"
	"errors"
	"time"

	"proplist-backend/application/ports"
	"proplist-backend/infrastructure/config"

	"github.com/redis/go-redis/v9"
)

// NewClient creates a Redis client from configuration.
func NewClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// Cache adapts a Redis client to the Cache port.
type Cache struct {
	client *redis.Client
}

// NewCache creates a Redis-backed cache.
func NewCache(client *redis.Client) ports.Cache {
	return &Cache{client: client}
}

// Get returns the value under key; a missing key is reported via the found
// flag, not as an error.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// Set stores the value under key with an expiry.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes the key. Deleting an absent key is not an error.
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}
