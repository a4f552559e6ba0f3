package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p != Defaults() {
		t.Fatalf("Load = %#v, want defaults %#v", p, Defaults())
	}
	if !p.PinProtection || !p.ShowLocalDevices {
		t.Fatalf("PinProtection/ShowLocalDevices = %v/%v, want true/true", p.PinProtection, p.ShowLocalDevices)
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "deck")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	content := "theme = \"dark\"\npin_protection = false\nlast_view = \"view=artists&artist=a1\"\n"
	prefsFile := filepath.Join(prefsDir, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != "dark" {
		t.Fatalf("Theme = %q, want %q", p.Theme, "dark")
	}
	if p.PinProtection {
		t.Fatalf("PinProtection = true, want false")
	}
	if !p.ShowLocalDevices {
		t.Fatalf("ShowLocalDevices = false, want default true when absent")
	}
	if p.PrimaryColor != defaultPrimaryColor {
		t.Fatalf("PrimaryColor = %q, want %q", p.PrimaryColor, defaultPrimaryColor)
	}
	if p.LastView != "view=artists&artist=a1" {
		t.Fatalf("LastView = %q", p.LastView)
	}
}

func TestSave_CreatesFileAndDirs(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "subdir", "prefs.toml")

	p := Defaults()
	p.Theme = "dark"
	p.AccentColor = "#ff0000"
	p.Language = "nl"
	p.ShowLocalDevices = false
	if err := Save(prefsFile, p); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded != p {
		t.Fatalf("Load after Save = %#v, want %#v", loaded, p)
	}
}

func TestSave_ReplacesFileWithoutLeftovers(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "prefs.toml")

	first := Defaults()
	first.LastView = "view=playlists"
	if err := Save(prefsFile, first); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	second := Defaults()
	second.Theme = " DARK "
	if err := Save(prefsFile, second); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	entries, err := os.ReadDir(tmp)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "prefs.toml" {
		t.Fatalf("dir entries = %v, want only prefs.toml", entries)
	}
	loaded, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Theme != "dark" || loaded.LastView != "" {
		t.Fatalf("Load = %#v, want second save normalized", loaded)
	}
}

func TestLoad_NormalizesValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, p Prefs)
	}{
		{
			name:    "empty theme",
			content: "theme = \"\"\n",
			check: func(t *testing.T, p Prefs) {
				if p.Theme != defaultTheme {
					t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
				}
			},
		},
		{
			name:    "unknown theme",
			content: "theme = \"Dracula\"\n",
			check: func(t *testing.T, p Prefs) {
				if p.Theme != defaultTheme {
					t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
				}
			},
		},
		{
			name:    "blank colors",
			content: "primary_color = \" \"\naccent_color = \"\"\n",
			check: func(t *testing.T, p Prefs) {
				if p.PrimaryColor != defaultPrimaryColor || p.AccentColor != defaultAccentColor {
					t.Fatalf("colors = %q/%q, want defaults", p.PrimaryColor, p.AccentColor)
				}
			},
		},
		{
			name:    "language case",
			content: "language = \" NL \"\n",
			check: func(t *testing.T, p Prefs) {
				if p.Language != "nl" {
					t.Fatalf("Language = %q, want nl", p.Language)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
			if err := os.WriteFile(prefsFile, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			p, err := Load(prefsFile)
			if err != nil {
				t.Fatalf("Load returned error: %v", err)
			}
			tt.check(t, p)
		})
	}
}

func TestLoad_InvalidTOMLFallsBackToDefault(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p != Defaults() {
		t.Fatalf("Load = %#v, want defaults", p)
	}
}
