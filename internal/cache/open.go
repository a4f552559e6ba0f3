package cache

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/five82/deck/internal/config"
)

// Open builds the library cache described by cfg. The memory backend never
// fails; file backends fail when the file cannot be opened.
func Open(cfg config.CacheConfig, logger *slog.Logger, now func() time.Time) (*Cache, error) {
	var (
		store Store
		err   error
	)
	backend := cfg.Backend
	path := cfg.Path
	switch backend {
	case config.CacheMemory:
		store = NewMemoryStore()
		path = ""
	case config.CacheSQLite:
		store, err = OpenSQLite(path)
	case config.CacheBolt, "":
		backend = config.CacheBolt
		store, err = OpenBolt(path)
	default:
		return nil, fmt.Errorf("unsupported cache backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}
	return New(store,
		WithTTL(cfg.TTL),
		WithLogger(logger),
		WithClock(now),
		WithDescription(backend, path),
	), nil
}
