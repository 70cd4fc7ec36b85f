// Package memo caches the outcomes of fallible lookups. Failures are cached
// too, usually for a shorter time than successes.
package memo

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/Philanthropists/expected/internal/logging"
	"github.com/Philanthropists/expected/pkg/expected"
)

type Loader[V any] func(ctx context.Context, key string) (V, error)

type inMemoryCache interface {
	Set(k string, v any, d time.Duration)
	Get(k string) (any, bool)
	Delete(k string)
	ItemCount() int
}

type Client[V any] struct {
	Load                  Loader[V]
	ExpirationTime        time.Duration
	FailureExpirationTime time.Duration
	CleanupInterval       time.Duration

	once  sync.Once
	cache inMemoryCache
}

func (c *Client[V]) init() {
	c.once.Do(func() {
		const defaultCleanupInterval = 1 * time.Minute

		cleanupInt := defaultCleanupInterval
		if c.CleanupInterval != 0 {
			cleanupInt = c.CleanupInterval
		}

		c.cache = cache.New(c.expirationTime(), cleanupInt)
	})
}

func (c *Client[V]) expirationTime() time.Duration {
	const defaultExpirationTime = 5 * time.Minute

	if c.ExpirationTime != 0 {
		return c.ExpirationTime
	}
	return defaultExpirationTime
}

func (c *Client[V]) failureExpirationTime() time.Duration {
	const defaultFailureExpirationTime = 30 * time.Second

	if c.FailureExpirationTime != 0 {
		return c.FailureExpirationTime
	}
	return defaultFailureExpirationTime
}

// Get returns the cached outcome for key, loading it on a miss. Outcomes of
// loads interrupted by ctx are returned but not cached.
func (c *Client[V]) Get(ctx context.Context, key string) expected.Expected[V, error] {
	c.init()
	log := logging.FromContext(ctx).Named("memo")

	if v, found := c.cache.Get(key); found {
		log.Debug("cache hit", logging.String("key", key))
		return v.(expected.Expected[V, error])
	}

	val, err := c.Load(ctx, key)
	res := expected.FromPair(val, err)
	if !res.HasValue() && ctx.Err() != nil {
		log.Debug("not caching interrupted load",
			logging.String("key", key), logging.Error(res.Err()))
		return res
	}

	exp := c.expirationTime()
	if !res.HasValue() {
		exp = c.failureExpirationTime()
	}

	c.cache.Set(key, res, exp)
	log.Debug("cached outcome",
		logging.String("key", key),
		logging.Duration("expiration", exp),
		logging.Outcome("outcome", res),
	)

	return res
}

func (c *Client[V]) Forget(key string) {
	c.init()
	c.cache.Delete(key)
}

// Len returns the number of cached outcomes, including expired ones not yet
// cleaned up.
func (c *Client[V]) Len() int {
	c.init()
	return c.cache.ItemCount()
}
