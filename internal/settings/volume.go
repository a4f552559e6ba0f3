package settings

import (
	"sync"
	"time"
)

const (
	// VolumeDebounce delays system volume writes while a slider moves.
	VolumeDebounce = 50 * time.Millisecond
	// LimitsDebounce delays default and max volume writes.
	LimitsDebounce = 300 * time.Millisecond
	// VolumeStep is one key press on a volume slider.
	VolumeStep = 5
)

// Limits are the kiosk's startup and ceiling volumes in percent.
type Limits struct {
	Default int
	Max     int
}

// Normalize clamps both values to 0..100 and Default to Max.
func (l Limits) Normalize() Limits {
	l.Max = ClampPercent(l.Max)
	l.Default = ClampPercent(l.Default)
	if l.Default > l.Max {
		l.Default = l.Max
	}
	return l
}

// WithMax sets the ceiling and pulls Default down if needed.
func (l Limits) WithMax(v int) Limits {
	l.Max = v
	return l.Normalize()
}

// WithDefault sets the startup volume, capped at Max.
func (l Limits) WithDefault(v int) Limits {
	l.Default = v
	return l.Normalize()
}

// ClampPercent limits v to 0..100.
func ClampPercent(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

// Level buckets a volume for the speaker glyph.
type Level int

const (
	LevelMuted Level = iota
	LevelLow
	LevelMedium
	LevelHigh
)

// VolumeLevel returns the glyph bucket for v.
func VolumeLevel(v int) Level {
	switch {
	case v <= 0:
		return LevelMuted
	case v < 30:
		return LevelLow
	case v < 70:
		return LevelMedium
	default:
		return LevelHigh
	}
}

// Glyph renders the level.
func (l Level) Glyph() string {
	switch l {
	case LevelMuted:
		return "🔇"
	case LevelLow:
		return "🔈"
	case LevelMedium:
		return "🔉"
	default:
		return "🔊"
	}
}

// Debouncer collapses bursts of input into the last value. Each Bump
// returns a sequence number; only the latest one is reported as current
// when its timer fires.
type Debouncer struct {
	mu  sync.Mutex
	seq uint64
}

// Bump records new input and returns its sequence number.
func (d *Debouncer) Bump() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	return d.seq
}

// Current reports whether seq is still the latest input.
func (d *Debouncer) Current(seq uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return seq == d.seq
}
