// Package prefs handles deck user preferences persistence.
// Preferences are stored in ~/.config/deck/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences for deck.
type Prefs struct {
	Theme            string `toml:"theme"`
	PrimaryColor     string `toml:"primary_color"`
	SecondaryColor   string `toml:"secondary_color"`
	AccentColor      string `toml:"accent_color"`
	Language         string `toml:"language"`
	PinProtection    bool   `toml:"pin_protection"`
	ShowLocalDevices bool   `toml:"show_local_devices"`
	LastView         string `toml:"last_view"`
}

const (
	defaultPrefsPath      = "~/.config/deck/prefs.toml"
	defaultTheme          = "light"
	defaultPrimaryColor   = "#667eea"
	defaultSecondaryColor = "#764ba2"
	defaultAccentColor    = "#eacd66"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Defaults returns the preferences used when nothing has been saved yet.
func Defaults() Prefs {
	return Prefs{
		Theme:            defaultTheme,
		PrimaryColor:     defaultPrimaryColor,
		SecondaryColor:   defaultSecondaryColor,
		AccentColor:      defaultAccentColor,
		PinProtection:    true,
		ShowLocalDevices: true,
	}
}

// Load reads preferences from the given path, falling back to defaults if missing.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Defaults(), nil
	}

	prefs := Defaults()

	data, err := os.ReadFile(resolved)
	if err != nil {
		// Missing or unreadable prefs are not fatal.
		return prefs, nil
	}

	if err := toml.Unmarshal(data, &prefs); err != nil {
		return Defaults(), nil
	}

	prefs.normalize()
	return prefs, nil
}

func (p *Prefs) normalize() {
	p.Theme = strings.ToLower(strings.TrimSpace(p.Theme))
	if p.Theme != "light" && p.Theme != "dark" {
		p.Theme = defaultTheme
	}
	if strings.TrimSpace(p.PrimaryColor) == "" {
		p.PrimaryColor = defaultPrimaryColor
	}
	if strings.TrimSpace(p.SecondaryColor) == "" {
		p.SecondaryColor = defaultSecondaryColor
	}
	if strings.TrimSpace(p.AccentColor) == "" {
		p.AccentColor = defaultAccentColor
	}
	p.Language = strings.ToLower(strings.TrimSpace(p.Language))
	p.LastView = strings.TrimSpace(p.LastView)
}

// Save writes preferences to the given path, creating directories as needed.
// The file is replaced atomically.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	p.normalize()
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), resolved); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
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
