// Package memory provides an in-process Cache implementation used in tests
// and when running without a Redis server.
package memory

import (
	"context"
	"sync"
	"time"

	"proplist-backend/application/ports"
)

// Cache is a simple in-memory cache with per-entry TTLs.
type Cache struct {
	mu    sync.RWMutex
	items map[string]cacheItem
}

type cacheItem struct {
	value     []byte
	expiresAt time.Time
}

// NewCache creates an in-memory cache and starts its cleanup goroutine.
func NewCache() *Cache {
	cache := &Cache{items: make(map[string]cacheItem)}
	go cache.cleanupExpired()
	return cache
}

var _ ports.Cache = (*Cache)(nil)

// Get returns the value under key if present and unexpired.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, exists := c.items[key]
	if !exists || time.Now().After(item.expiresAt) {
		return nil, false, nil
	}
	return item.value, true, nil
}

// Set stores the value under key with an expiry.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = cacheItem{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Delete removes the key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
	return nil
}

// cleanupExpired periodically removes expired items.
func (c *Cache) cleanupExpired() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for key, item := range c.items {
			if now.After(item.expiresAt) {
				delete(c.items, key)
			}
		}
		c.mu.Unlock()
	}
}
