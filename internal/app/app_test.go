package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/deck/internal/config"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Backend = "127.0.0.1:1"
	cfg.Cache = config.CacheConfig{Backend: config.CacheMemory, TTL: time.Hour}
	cfg.Log = config.LogConfig{File: filepath.Join(dir, "logs", "deck.log"), Level: "debug"}
	return cfg
}

func TestOpen_MemoryCache(t *testing.T) {
	cfg := testConfig(t)

	svc, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if svc.Client == nil || svc.Cache == nil || svc.Library == nil || svc.Logger == nil {
		t.Fatalf("Open left services unset: %+v", svc)
	}
	if got := svc.Client.BaseURL(); got != "http://127.0.0.1:1" {
		t.Fatalf("BaseURL = %q", got)
	}
	st, err := svc.Cache.Status()
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if st.Backend != config.CacheMemory || st.TTL != time.Hour {
		t.Fatalf("cache status = %+v, want memory backend with 1h ttl", st)
	}

	svc.Logger.Info("hello from test")
	if err := svc.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	data, err := os.ReadFile(cfg.Log.File)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Fatalf("log file = %q, want the logged message", data)
	}
}

func TestOpen_BoltCacheFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.Cache.Backend = config.CacheBolt
	cfg.Cache.Path = filepath.Join(t.TempDir(), "library.db")

	svc, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer func() { _ = svc.Close() }()
	if _, err := os.Stat(cfg.Cache.Path); err != nil {
		t.Fatalf("cache file not created: %v", err)
	}
}

func TestOpen_UnsupportedCacheBackend(t *testing.T) {
	cfg := testConfig(t)
	cfg.Cache.Backend = "redis"

	if _, err := Open(cfg); err == nil || !strings.Contains(err.Error(), "unsupported cache backend") {
		t.Fatalf("Open error = %v, want unsupported cache backend", err)
	}
}
