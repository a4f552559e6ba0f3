package cache

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/five82/deck/internal/logging"
)

// DefaultTTL is how long library data stays fresh.
const DefaultTTL = 24 * time.Hour

// Store is a byte-level key/value backend.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
	DeletePrefix(prefix string) (int, error)
	Each(fn func(key string, value []byte) error) error
	Close() error
}

// Entry is the envelope persisted for every key.
type Entry struct {
	Key       string          `json:"key"`
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"` // epoch ms
}

// Cache is a TTL cache over a Store. Expired and corrupt entries read as
// misses and are removed on read. Write failures are logged, never returned.
type Cache struct {
	store   Store
	ttl     time.Duration
	now     func() time.Time
	logger  *slog.Logger
	backend string
	path    string
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL overrides DefaultTTL.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock injects the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets the logger used for swallowed errors.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		c.logger = logging.OrDiscard(logger)
	}
}

// WithDescription records the backend name and location for Status.
func WithDescription(backend, path string) Option {
	return func(c *Cache) {
		c.backend = backend
		c.path = path
	}
}

// New wraps store in a TTL cache.
func New(store Store, opts ...Option) *Cache {
	c := &Cache{
		store:   store,
		ttl:     DefaultTTL,
		now:     time.Now,
		logger:  logging.Discard(),
		backend: "custom",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL returns the configured freshness window.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Get decodes the value stored under key into dest. It reports false when
// the key is missing, expired or cannot be decoded.
func (c *Cache) Get(key string, dest any) bool {
	raw, ok, err := c.store.Get(key)
	if err != nil {
		c.logger.Warn("cache read failed", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil || len(entry.Data) == 0 {
		c.logger.Debug("cache entry corrupt", "key", key)
		c.remove(key)
		return false
	}
	if c.expired(entry) {
		c.remove(key)
		return false
	}
	if err := json.Unmarshal(entry.Data, dest); err != nil {
		c.logger.Debug("cache entry does not match type", "key", key, "error", err)
		return false
	}
	return true
}

// Set stores value under key with the current timestamp.
func (c *Cache) Set(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache encode failed", "key", key, "error", err)
		return
	}
	raw, err := json.Marshal(Entry{Key: key, Data: data, Timestamp: c.now().UnixMilli()})
	if err != nil {
		c.logger.Warn("cache encode failed", "key", key, "error", err)
		return
	}
	if err := c.store.Put(key, raw); err != nil {
		c.logger.Warn("cache write failed", "key", key, "error", err)
	}
}

// Remove deletes key.
func (c *Cache) Remove(key string) {
	c.remove(key)
}

// ClearPrefix deletes every key starting with one of prefixes and returns
// how many were removed. An empty prefix clears everything.
func (c *Cache) ClearPrefix(prefixes ...string) int {
	total := 0
	for _, prefix := range prefixes {
		n, err := c.store.DeletePrefix(prefix)
		if err != nil {
			c.logger.Warn("cache clear failed", "prefix", prefix, "error", err)
		}
		total += n
	}
	return total
}

// Close releases the backing store.
func (c *Cache) Close() error {
	return c.store.Close()
}

// Status summarizes what the cache holds.
type Status struct {
	Backend string
	Path    string
	TTL     time.Duration
	Entries int
	Expired int
	Corrupt int
	Bytes   int64
	Oldest  time.Time
	Newest  time.Time
}

// Status walks the store and reports counts.
func (c *Cache) Status() (Status, error) {
	st := Status{Backend: c.backend, Path: c.path, TTL: c.ttl}
	err := c.store.Each(func(key string, value []byte) error {
		st.Entries++
		st.Bytes += int64(len(value))
		var entry Entry
		if err := json.Unmarshal(value, &entry); err != nil {
			st.Corrupt++
			return nil
		}
		if c.expired(entry) {
			st.Expired++
		}
		ts := time.UnixMilli(entry.Timestamp)
		if st.Oldest.IsZero() || ts.Before(st.Oldest) {
			st.Oldest = ts
		}
		if ts.After(st.Newest) {
			st.Newest = ts
		}
		return nil
	})
	if err != nil {
		return Status{}, fmt.Errorf("cache status: %w", err)
	}
	return st, nil
}

func (c *Cache) expired(e Entry) bool {
	age := c.now().UnixMilli() - e.Timestamp
	return age > c.ttl.Milliseconds()
}

func (c *Cache) remove(key string) {
	if err := c.store.Delete(key); err != nil {
		c.logger.Warn("cache delete failed", "key", key, "error", err)
	}
}
