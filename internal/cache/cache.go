// Package cache is the best-effort memoization layer. It is never the source
// of truth: a miss is always satisfiable by recomputation from the catalog,
// and clearing it changes latency, not answers.
package cache

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"soundproofing-calculator/internal/common/logger"
	"soundproofing-calculator/internal/common/metrics"

	"github.com/redis/go-redis/v9"
)

// Stats are the lifetime counters of one cache instance.
type Stats struct {
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
	Added   int64 `json:"added"`
	Removed int64 `json:"removed"`
}

// Cache is the key/value store with per-entry TTL used to memoize expensive
// derivations. Implementations are safe for concurrent use. Get unmarshals
// into dest and reports a hit; every failure path is a miss, never an error.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) bool
	Has(ctx context.Context, key string) bool
	Delete(ctx context.Context, key string) bool
	Clear(ctx context.Context) bool
	Stats() Stats
}

// New returns a redis-backed cache when a client is supplied, otherwise an
// in-process cache.
func New(rdb *redis.Client, log logger.Logger) Cache {
	if rdb == nil {
		return NewMemory()
	}
	return &redisCache{client: rdb, logger: log}
}

var (
	defaultOnce  sync.Once
	defaultCache Cache
)

// Default returns the lazily constructed process-wide cache. Components take
// a Cache by injection; this accessor exists for bootstrap wiring only.
func Default() Cache {
	defaultOnce.Do(func() {
		defaultCache = NewMemory()
	})
	return defaultCache
}

// namespace is the key prefix up to the first separator, used as the metric
// label.
func namespace(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return "other"
}

// ==========================
// In-memory implementation
// ==========================

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry

	hits    atomic.Int64
	misses  atomic.Int64
	added   atomic.Int64
	removed atomic.Int64
}

// NewMemory returns a guarded in-process cache with lazy TTL expiry.
func NewMemory() Cache {
	return &memoryCache{entries: make(map[string]memoryEntry)}
}

// lookup fetches a live entry, deleting it when expired. Expiry is checked
// lazily on read; there is no background sweeper.
func (c *memoryCache) lookup(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		delete(c.entries, key)
		c.removed.Add(1)
		return nil, false
	}
	return entry.data, true
}

func (c *memoryCache) Get(_ context.Context, key string, dest interface{}) bool {
	data, ok := c.lookup(key)
	if !ok {
		c.misses.Add(1)
		metrics.CacheRequests.WithLabelValues(namespace(key), "miss").Inc()
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		c.misses.Add(1)
		metrics.CacheRequests.WithLabelValues(namespace(key), "miss").Inc()
		return false
	}
	c.hits.Add(1)
	metrics.CacheRequests.WithLabelValues(namespace(key), "hit").Inc()
	return true
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) bool {
	data, err := json.Marshal(value)
	if err != nil {
		return false
	}

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	c.mu.Lock()
	c.entries[key] = memoryEntry{data: data, expiresAt: expiresAt}
	c.mu.Unlock()
	c.added.Add(1)
	return true
}

func (c *memoryCache) Has(_ context.Context, key string) bool {
	_, ok := c.lookup(key)
	return ok
}

func (c *memoryCache) Delete(_ context.Context, key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok {
		return false
	}
	delete(c.entries, key)
	c.removed.Add(1)
	return true
}

func (c *memoryCache) Clear(_ context.Context) bool {
	c.mu.Lock()
	removed := len(c.entries)
	c.entries = make(map[string]memoryEntry)
	c.mu.Unlock()
	c.removed.Add(int64(removed))
	return true
}

func (c *memoryCache) Stats() Stats {
	return Stats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Added:   c.added.Load(),
		Removed: c.removed.Load(),
	}
}

// ==========================
// Redis implementation
// ==========================

type redisCache struct {
	client *redis.Client
	logger logger.Logger

	hits    atomic.Int64
	misses  atomic.Int64
	added   atomic.Int64
	removed atomic.Int64
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) bool {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil && c.logger != nil {
			c.logger.Warn("cache get failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		c.misses.Add(1)
		metrics.CacheRequests.WithLabelValues(namespace(key), "miss").Inc()
		return false
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		c.misses.Add(1)
		metrics.CacheRequests.WithLabelValues(namespace(key), "miss").Inc()
		return false
	}
	c.hits.Add(1)
	metrics.CacheRequests.WithLabelValues(namespace(key), "hit").Inc()
	return true
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) bool {
	data, err := json.Marshal(value)
	if err != nil {
		return false
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		if c.logger != nil {
			c.logger.Warn("cache set failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return false
	}
	c.added.Add(1)
	return true
}

func (c *redisCache) Has(ctx context.Context, key string) bool {
	n, err := c.client.Exists(ctx, key).Result()
	return err == nil && n > 0
}

func (c *redisCache) Delete(ctx context.Context, key string) bool {
	n, err := c.client.Del(ctx, key).Result()
	if err != nil {
		return false
	}
	c.removed.Add(n)
	return n > 0
}

func (c *redisCache) Clear(ctx context.Context) bool {
	if err := c.client.FlushDB(ctx).Err(); err != nil {
		if c.logger != nil {
			c.logger.Warn("cache clear failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return false
	}
	return true
}

func (c *redisCache) Stats() Stats {
	return Stats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Added:   c.added.Load(),
		Removed: c.removed.Load(),
	}
}
