// Package cache is a time-bounded result store that lets callers avoid
// re-invoking expensive report generation within a freshness window.
// Entries are derived, reproducible data, never the source of truth:
// save failures are logged and swallowed, expiry is evaluated lazily at
// read time, and concurrent saves race last-write-wins.
package cache

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTTL is the freshness window applied when no TTL option is given.
const DefaultTTL = time.Hour

// Entry is the stored envelope: the caller's payload plus the save time.
type Entry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// Store is the underlying key/value storage. Implementations need no
// TTL awareness; the Cache layers freshness on top.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, val []byte) error
	Delete(key string)
	Keys() []string
	Len() int
}

// Cache wraps a Store with freshness-window semantics.
type Cache struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
	log   zerolog.Logger
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL overrides the freshness window.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) { c.ttl = ttl }
}

// WithNow overrides the clock, for tests.
func WithNow(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// WithLogger sets the logger used when save failures are swallowed.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Cache) { c.log = log }
}

// New creates a cache over the given store with a one-hour freshness
// window and a no-op logger.
func New(store Store, opts ...Option) *Cache {
	c := &Cache{
		store: store,
		ttl:   DefaultTTL,
		now:   time.Now,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Save stores the value under the key, stamped with the current time
// and overwriting any prior entry. Failures never reach the caller:
// the cache is a pure optimization and must not block generation.
func (c *Cache) Save(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache save: encoding failed")
		return
	}
	raw, err := json.Marshal(Entry{Data: data, Timestamp: c.now()})
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache save: encoding failed")
		return
	}
	if err := c.store.Set(key, raw); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache save: store failed")
	}
}

// Load decodes the entry for the key into v and reports whether it was
// a hit. A missing key, an entry older than the freshness window, or an
// undecodable payload are all misses; stale and corrupt entries are
// deleted on the way out.
func (c *Cache) Load(key string, v any) bool {
	raw, ok := c.store.Get(key)
	if !ok {
		return false
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		c.store.Delete(key)
		return false
	}
	if c.now().Sub(entry.Timestamp) > c.ttl {
		c.store.Delete(key)
		return false
	}
	if err := json.Unmarshal(entry.Data, v); err != nil {
		c.store.Delete(key)
		return false
	}
	return true
}

// Clear removes an entry unconditionally, for explicit user-triggered
// refresh.
func (c *Cache) Clear(key string) {
	c.store.Delete(key)
}

// Sweep deletes every expired or undecodable entry and returns the
// number removed. Long-running sessions can call it periodically to
// bound growth; nothing in the cache schedules it.
func (c *Cache) Sweep() int {
	removed := 0
	for _, key := range c.store.Keys() {
		raw, ok := c.store.Get(key)
		if !ok {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(raw, &entry); err != nil || c.now().Sub(entry.Timestamp) > c.ttl {
			c.store.Delete(key)
			removed++
		}
	}
	return removed
}
