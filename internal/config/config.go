package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything deck needs to reach the kiosk backend and keep
// its local state.
type Config struct {
	Backend  string
	Language string
	Cache    CacheConfig
	Log      LogConfig
	Poll     PollConfig
}

// CacheConfig selects the library cache backend.
type CacheConfig struct {
	Backend string // bolt, sqlite or memory
	Path    string
	TTL     time.Duration
}

// LogConfig controls the structured log file.
type LogConfig struct {
	File  string
	Level string
}

// PollConfig holds the refresh cadence of each poller.
type PollConfig struct {
	NowPlaying    time.Duration
	Progress      time.Duration
	Devices       time.Duration
	Bluetooth     time.Duration
	BluetoothScan time.Duration
}

// Cache backends.
const (
	CacheBolt   = "bolt"
	CacheSQLite = "sqlite"
	CacheMemory = "memory"
)

const (
	defaultConfigPath = "~/.config/deck/config.toml"
	defaultBackend    = "127.0.0.1:5000"
	defaultLanguage   = "en"
	defaultCacheDir   = "~/.cache/deck"
	defaultLogFile    = "~/.local/state/deck/deck.log"
	defaultLogLevel   = "info"
	defaultCacheTTL   = 24 * time.Hour
)

// Default returns a Config populated with defaults and expanded paths.
func Default() Config {
	return Config{
		Backend:  defaultBackend,
		Language: defaultLanguage,
		Cache: CacheConfig{
			Backend: CacheBolt,
			Path:    mustExpand(filepath.Join(defaultCacheDir, "library.db")),
			TTL:     defaultCacheTTL,
		},
		Log: LogConfig{
			File:  mustExpand(defaultLogFile),
			Level: defaultLogLevel,
		},
		Poll: PollConfig{
			NowPlaying:    5 * time.Second,
			Progress:      time.Second,
			Devices:       3 * time.Second,
			Bluetooth:     3 * time.Second,
			BluetoothScan: 2 * time.Second,
		},
	}
}

// DefaultPath returns the unexpanded default config location.
func DefaultPath() string {
	return defaultConfigPath
}

type rawConfig struct {
	Backend  string `toml:"backend"`
	Language string `toml:"language"`
	Cache    struct {
		Backend string `toml:"backend"`
		Path    string `toml:"path"`
		TTL     string `toml:"ttl"`
	} `toml:"cache"`
	Log struct {
		File  string `toml:"file"`
		Level string `toml:"level"`
	} `toml:"log"`
	Poll struct {
		NowPlaying    string `toml:"now_playing"`
		Progress      string `toml:"progress"`
		Devices       string `toml:"devices"`
		Bluetooth     string `toml:"bluetooth"`
		BluetoothScan string `toml:"bluetooth_scan"`
	} `toml:"poll"`
}

// Load locates and parses the deck config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.Backend); v != "" {
		cfg.Backend = v
	}
	if v := strings.ToLower(strings.TrimSpace(raw.Language)); v != "" {
		cfg.Language = v
	}

	switch backend := strings.ToLower(strings.TrimSpace(raw.Cache.Backend)); backend {
	case "":
	case CacheBolt, CacheMemory:
		cfg.Cache.Backend = backend
	case CacheSQLite:
		cfg.Cache.Backend = backend
		cfg.Cache.Path = mustExpand(filepath.Join(defaultCacheDir, "library.sqlite"))
	default:
		return Config{}, fmt.Errorf("parse config: unknown cache backend %q", raw.Cache.Backend)
	}
	if v := strings.TrimSpace(raw.Cache.Path); v != "" {
		cfg.Cache.Path = mustExpand(v)
	}
	if err := parseDuration(raw.Cache.TTL, "cache.ttl", &cfg.Cache.TTL); err != nil {
		return Config{}, err
	}

	if v := strings.TrimSpace(raw.Log.File); v != "" {
		cfg.Log.File = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.Log.Level); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}

	polls := []struct {
		raw  string
		name string
		dest *time.Duration
	}{
		{raw.Poll.NowPlaying, "poll.now_playing", &cfg.Poll.NowPlaying},
		{raw.Poll.Progress, "poll.progress", &cfg.Poll.Progress},
		{raw.Poll.Devices, "poll.devices", &cfg.Poll.Devices},
		{raw.Poll.Bluetooth, "poll.bluetooth", &cfg.Poll.Bluetooth},
		{raw.Poll.BluetoothScan, "poll.bluetooth_scan", &cfg.Poll.BluetoothScan},
	}
	for _, p := range polls {
		if err := parseDuration(p.raw, p.name, p.dest); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

func parseDuration(value, name string, dest *time.Duration) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	if d <= 0 {
		return fmt.Errorf("parse %s: duration must be positive", name)
	}
	*dest = d
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and makes the path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
