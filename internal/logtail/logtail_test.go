package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "deck.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{name: "read all (0)", maxLines: 0, expected: expectedAll},
		{name: "read all (negative)", maxLines: -1, expected: expectedAll},
		{name: "read partial (5)", maxLines: 5, expected: expectedAll[5:]},
		{name: "read exactly all (10)", maxLines: 10, expected: expectedAll},
		{name: "read more than exists (20)", maxLines: 20, expected: expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil {
		t.Fatalf("Read() error = %v, want nil", err)
	}
	if got != nil {
		t.Fatalf("Read() = %v, want nil", got)
	}
}

func TestParse(t *testing.T) {
	line := `{"time":"2026-03-01T10:04:05.123Z","level":"WARN","msg":"cache write failed","key":"spotify-tracks-p1","attempt":2}`
	entry := Parse(line)

	if entry.Level != "WARN" || entry.Message != "cache write failed" {
		t.Fatalf("Parse() = %+v, want WARN / cache write failed", entry)
	}
	want := time.Date(2026, 3, 1, 10, 4, 5, 123000000, time.UTC)
	if !entry.Time.Equal(want) {
		t.Fatalf("Time = %v, want %v", entry.Time, want)
	}
	if entry.Attrs["key"] != "spotify-tracks-p1" {
		t.Fatalf("Attrs = %v, want key attr", entry.Attrs)
	}
	if _, ok := entry.Attrs["msg"]; ok {
		t.Fatalf("Attrs should not keep msg: %v", entry.Attrs)
	}
}

func TestParse_PlainLine(t *testing.T) {
	entry := Parse("  panic: something  ")
	if entry.Message != "panic: something" || entry.Level != "" {
		t.Fatalf("Parse() = %+v, want plain message", entry)
	}
	if entry.String() != "panic: something" {
		t.Fatalf("String() = %q", entry.String())
	}
}

func TestEntryString_SortsAttrs(t *testing.T) {
	entry := Entry{
		Level:   "INFO",
		Message: "switched",
		Attrs:   map[string]any{"device": "hdmi", "elapsed": "120ms"},
	}
	want := "INFO  switched device=hdmi elapsed=120ms"
	if got := entry.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestEntryColorize_NoColorMatchesString(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	entry := Entry{Level: "ERROR", Message: "boom"}
	if got, want := entry.Colorize(), entry.String(); got != want {
		t.Fatalf("Colorize() = %q, want %q", got, want)
	}
}
