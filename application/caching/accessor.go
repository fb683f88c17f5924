// Package caching implements the cache-aside protocol used by every read
// path: check the cache, populate on miss, serve. The store stays
// authoritative; the cache is a disposable projection with bounded staleness.
//
// Invalidation obligations per mutation:
//
//	create property  -> populate property:{id}, invalidate property:list
//	update property  -> invalidate property:{id}
//	delete property  -> invalidate property:{id}, property:list
//	add favorites    -> invalidate favorites:{userID} (only when added > 0)
//	remove favorites -> invalidate favorites:{userID} (only on actual change)
//	create recommendation -> invalidate recommendations:received:{recipientID}
package caching

import (
	"context"
	"encoding/json"
	"time"

	"proplist-backend/application/ports"

	"go.uber.org/zap"
)

// Accessor wraps a Cache with the read-through and invalidation semantics
// shared by all entity types. Cache failures never block a store read: a
// failed lookup is a miss, a failed populate or invalidate is logged and
// swallowed.
type Accessor struct {
	cache  ports.Cache
	logger *zap.Logger
}

// NewAccessor creates a cache accessor.
func NewAccessor(cache ports.Cache, logger *zap.Logger) *Accessor {
	return &Accessor{cache: cache, logger: logger}
}

// lookup fills dest from the cache and reports whether it hit. Transport and
// decode failures count as misses.
func (a *Accessor) lookup(ctx context.Context, key string, dest interface{}) bool {
	data, found, err := a.cache.Get(ctx, key)
	if err != nil {
		a.logger.Warn("cache lookup failed, falling through to store",
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		a.logger.Warn("discarding malformed cache entry",
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}
	return true
}

// Populate stores a value under key with the given TTL. Best-effort: the
// value is already durable in the store, so a cache failure is only logged.
func (a *Accessor) Populate(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		a.logger.Warn("cache populate skipped: unmarshalable value",
			zap.String("key", key),
			zap.Error(err),
		)
		return
	}
	if err := a.cache.Set(ctx, key, data, ttl); err != nil {
		a.logger.Warn("cache populate failed",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

// Invalidate deletes the given cache entries. Idempotent; absence of a key is
// not an error, and delete failures are logged and swallowed because the
// mutation that triggered them has already succeeded.
func (a *Accessor) Invalidate(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if err := a.cache.Delete(ctx, key); err != nil {
			a.logger.Warn("cache invalidation failed",
				zap.String("key", key),
				zap.Error(err),
			)
		}
	}
}

// GetOrLoad serves a single value through the cache: on a hit the cached copy
// is returned; on a miss the loader runs against the store and its result is
// populated best-effort before being returned. Loader failures propagate.
func GetOrLoad[T any](ctx context.Context, a *Accessor, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	var cached T
	if a.lookup(ctx, key, &cached) {
		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}
	a.Populate(ctx, key, value, ttl)
	return value, nil
}

// GetOrLoadList serves a list-shaped value through the cache. A cached hit is
// only served if it passes the shape check: by default the list must be
// non-empty, and an optional valid func can impose stricter structure. An
// empty or malformed cached list is treated as a miss, not served.
func GetOrLoadList[T any](ctx context.Context, a *Accessor, key string, ttl time.Duration, valid func([]T) bool, load func(context.Context) ([]T, error)) ([]T, error) {
	var cached []T
	if a.lookup(ctx, key, &cached) && len(cached) > 0 && (valid == nil || valid(cached)) {
		return cached, nil
	}

	values, err := load(ctx)
	if err != nil {
		return nil, err
	}
	a.Populate(ctx, key, values, ttl)
	return values, nil
}
