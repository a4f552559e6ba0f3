package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Backend != defaultBackend {
		t.Fatalf("Backend = %q, want %q", cfg.Backend, defaultBackend)
	}
	if cfg.Cache.Backend != CacheBolt {
		t.Fatalf("Cache.Backend = %q, want %q", cfg.Cache.Backend, CacheBolt)
	}
	if cfg.Cache.TTL != 24*time.Hour {
		t.Fatalf("Cache.TTL = %v, want 24h", cfg.Cache.TTL)
	}
	if want := filepath.Join(home, ".cache", "deck", "library.db"); cfg.Cache.Path != want {
		t.Fatalf("Cache.Path = %q, want %q", cfg.Cache.Path, want)
	}
	if !strings.HasPrefix(cfg.Log.File, home) {
		t.Fatalf("Log.File = %q, want it under HOME %q", cfg.Log.File, home)
	}
	if cfg.Poll.NowPlaying != 5*time.Second || cfg.Poll.Devices != 3*time.Second {
		t.Fatalf("Poll = %+v, want now_playing=5s devices=3s", cfg.Poll)
	}
	if cfg.Poll.Bluetooth != 3*time.Second || cfg.Poll.BluetoothScan != 2*time.Second {
		t.Fatalf("Poll = %+v, want bluetooth=3s bluetooth_scan=2s", cfg.Poll)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
backend = "  10.0.0.5:9999  "
language = " NL "

[cache]
backend = "sqlite"
ttl = "2h"

[log]
file = "  ~/logs/deck.log  "
level = "DEBUG"

[poll]
now_playing = "10s"
devices = "1500ms"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Backend != "10.0.0.5:9999" {
		t.Fatalf("Backend = %q, want %q", cfg.Backend, "10.0.0.5:9999")
	}
	if cfg.Language != "nl" {
		t.Fatalf("Language = %q, want nl", cfg.Language)
	}
	if cfg.Cache.Backend != CacheSQLite {
		t.Fatalf("Cache.Backend = %q, want sqlite", cfg.Cache.Backend)
	}
	if !strings.HasSuffix(cfg.Cache.Path, "library.sqlite") {
		t.Fatalf("Cache.Path = %q, want sqlite default file", cfg.Cache.Path)
	}
	if cfg.Cache.TTL != 2*time.Hour {
		t.Fatalf("Cache.TTL = %v, want 2h", cfg.Cache.TTL)
	}
	if cfg.Log.File != filepath.Join(home, "logs", "deck.log") {
		t.Fatalf("Log.File = %q, want it under HOME %q", cfg.Log.File, home)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Poll.NowPlaying != 10*time.Second {
		t.Fatalf("Poll.NowPlaying = %v, want 10s", cfg.Poll.NowPlaying)
	}
	if cfg.Poll.Devices != 1500*time.Millisecond {
		t.Fatalf("Poll.Devices = %v, want 1.5s", cfg.Poll.Devices)
	}
	if cfg.Poll.Bluetooth != 3*time.Second {
		t.Fatalf("Poll.Bluetooth = %v, want default 3s", cfg.Poll.Bluetooth)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
backend = "   "
[log]
file = ""
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Backend != defaultBackend {
		t.Fatalf("Backend = %q, want %q", cfg.Backend, defaultBackend)
	}
	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.Log.File != wantLog {
		t.Fatalf("Log.File = %q, want %q", cfg.Log.File, wantLog)
	}
}

func TestLoad_InvalidValuesFail(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "toml", content: `backend = [`, want: "parse config"},
		{name: "cache backend", content: "[cache]\nbackend = \"redis\"\n", want: "unknown cache backend"},
		{name: "duration", content: "[poll]\ndevices = \"soon\"\n", want: "poll.devices"},
		{name: "negative", content: "[cache]\nttl = \"-1h\"\n", want: "must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatalf("Load returned nil error, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load error = %q, want it to mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
