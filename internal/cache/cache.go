// ABOUTME: TTL response cache for the external lookup clients.
// ABOUTME: Entries are JSON envelopes; every failure degrades to a cache miss.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultTTL is how long an entry stays fresh.
const DefaultTTL = 24 * time.Hour

// Backend persists raw cache entries. *kv.Store satisfies it.
type Backend interface {
	Get(key string) ([]byte, error)
	Set(key string, data []byte) error
}

// envelope is the stored form of a cached value.
type envelope struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}

// Cache is an advisory cache: callers never see its errors.
type Cache struct {
	backend Backend
	prefix  string
	ttl     time.Duration
	now     func() time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL overrides DefaultTTL. Non-positive values are ignored.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// WithPrefix namespaces every key in the backend.
func WithPrefix(prefix string) Option {
	return func(c *Cache) { c.prefix = prefix }
}

// New creates a Cache over backend.
func New(backend Backend, opts ...Option) *Cache {
	c := &Cache{
		backend: backend,
		ttl:     DefaultTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL returns the freshness window.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Get decodes the fresh entry under key into dst and reports whether it did.
// Missing, stale, unreadable and undecodable entries all report false.
// Stale entries are left in place.
func (c *Cache) Get(ctx context.Context, key string, dst any) bool {
	if c == nil || c.backend == nil {
		return false
	}
	logger := log.With().Str("cache_key", key).Logger()

	raw, err := c.backend.Get(c.prefix + key)
	if err != nil {
		logger.Debug().Err(err).Msg("Cache miss")
		return false
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		logger.Warn().Err(err).Msg("Corrupt cache entry")
		return false
	}

	age := c.now().Sub(time.UnixMilli(env.Timestamp))
	if age > c.ttl {
		logger.Debug().Dur("age", age).Msg("Cache entry expired")
		return false
	}

	if err := json.Unmarshal(env.Data, dst); err != nil {
		logger.Warn().Err(err).Msg("Cache entry does not decode")
		return false
	}
	return true
}

// Set stores value under key with the current time, overwriting any entry.
// Failures are logged and dropped.
func (c *Cache) Set(ctx context.Context, key string, value any) {
	if c == nil || c.backend == nil {
		return
	}
	logger := log.With().Str("cache_key", key).Logger()

	data, err := json.Marshal(value)
	if err != nil {
		logger.Warn().Err(err).Msg("Encode cache value")
		return
	}
	raw, err := json.Marshal(envelope{Data: data, Timestamp: c.now().UnixMilli()})
	if err != nil {
		logger.Warn().Err(err).Msg("Encode cache entry")
		return
	}
	if err := c.backend.Set(c.prefix+key, raw); err != nil {
		logger.Warn().Err(err).Msg("Write cache entry")
	}
}
