// Package cache implements the TTL-based request cache behind all table
// fetches. The cache is an explicitly constructed instance injected into
// its consumers, never a package-level singleton.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/sixtyseconds/ai-development-hub/app/domain"
)

// DefaultTTL is the reuse window applied when a fetch does not specify one.
const DefaultTTL = 30 * time.Second

// Thunk produces one remote query result.
type Thunk func(ctx context.Context) (*domain.QueryResult, error)

// FetchOptions controls a single cached fetch.
type FetchOptions struct {
	TTL          time.Duration
	ForceRefresh bool
}

type entry struct {
	result   *domain.QueryResult
	storedAt time.Time
}

// Cache is a key -> (result, storedAt) table with TTL reuse, forced
// bypass and manual invalidation. Concurrent fetches for the same key
// share one in-flight thunk invocation.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	group   singleflight.Group
	logger  *slog.Logger

	// now is swapped in tests to control entry age.
	now func() time.Time
}

// New creates a cache with the default TTL.
func New(logger *slog.Logger) *Cache {
	return NewWithTTL(DefaultTTL, logger)
}

// NewWithTTL creates a cache with a custom default TTL.
func NewWithTTL(ttl time.Duration, logger *slog.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		logger:  logger.With("component", "cache"),
		now:     time.Now,
	}
}

// FetchWithCache returns the cached result for key while it is fresher
// than the TTL, otherwise invokes the thunk once and caches a successful
// outcome. The full result, including any error, goes back to the caller
// regardless of caching; a thunk failure is absorbed into the result
// value, so this method never itself fails.
func (c *Cache) FetchWithCache(ctx context.Context, key string, thunk Thunk, opts FetchOptions) *domain.QueryResult {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = c.ttl
	}

	if !opts.ForceRefresh {
		if res, ok := c.lookup(key, ttl); ok {
			c.logger.Debug("cache hit", "key", key)
			return res
		}
	}

	v, _, shared := c.group.Do(key, func() (any, error) {
		return c.execute(ctx, key, thunk), nil
	})
	if shared {
		c.logger.Debug("cache fetch shared in flight", "key", key)
	}
	return v.(*domain.QueryResult)
}

// execute runs the thunk and stores the result when it carries no error
// and non-absent data. Panics and errors become a result value.
func (c *Cache) execute(ctx context.Context, key string, thunk Thunk) (res *domain.QueryResult) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("query panicked", "key", key, "panic", r)
			res = &domain.QueryResult{Err: fmt.Errorf("query for %q panicked: %v", key, r)}
		}
	}()

	result, err := thunk(ctx)
	if err != nil {
		c.logger.Warn("query failed", "key", key, "error", err)
		return &domain.QueryResult{Err: err}
	}
	if result == nil {
		return &domain.QueryResult{}
	}

	if result.Err == nil && result.Data != nil {
		c.store(key, result)
	}
	return result
}

func (c *Cache) lookup(key string, ttl time.Duration) (*domain.QueryResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.storedAt) > ttl {
		return nil, false
	}
	return e.result, true
}

func (c *Cache) store(key string, result *domain.QueryResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// Forced refreshes overwrite, never merge.
	c.entries[key] = entry{result: result, storedAt: c.now()}
}

// Clear removes the given keys, or every entry when called with none.
// Clearing an absent key is a no-op.
func (c *Cache) Clear(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(keys) == 0 {
		c.logger.Debug("cleared entire cache", "entries", len(c.entries))
		c.entries = make(map[string]entry)
		return
	}
	for _, key := range keys {
		delete(c.entries, key)
	}
	c.logger.Debug("cleared cache keys", "keys", keys)
}

// Len reports the number of live entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
