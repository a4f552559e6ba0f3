// Package cache implements the library TTL cache and a short-lived
// in-memory memo.
//
// Cache wraps a byte-level Store with an Entry envelope ({key, data,
// timestamp}) and a freshness window (24h by default). Get treats missing,
// expired and undecodable entries as misses and deletes the latter two.
// Set, Remove and ClearPrefix never return errors; failures are logged at
// warn level and the caller carries on without the cache.
//
// Three stores are available: BoltStore (default, a bbolt file with read
// promotion into memory), SQLiteStore (one table in a modernc SQLite file)
// and MemoryStore. Open picks one from config.CacheConfig.
//
// Memo is a mutex-guarded single value with a TTL, used for the 60 second
// audio-device list.
package cache
