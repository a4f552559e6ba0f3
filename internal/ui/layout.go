package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops the
	// album and the list pane narrows.
	LayoutCompactWidth = 100

	// LayoutListWidth is the width of the playlists/artists pane.
	LayoutListWidth = 32
)

// Timing constants.
const (
	// ToastDuration is how long a toast stays on screen.
	ToastDuration = 2 * time.Second

	// SkipRefreshDelay is the wait after next/previous before now playing is
	// fetched again, so the backend has switched tracks.
	SkipRefreshDelay = 500 * time.Millisecond

	// SeekStep is one seek key press.
	SeekStep = 10 * time.Second

	// DefaultUIInterval is the default progress tick.
	DefaultUIInterval = time.Second

	// RequestTimeout bounds a single UI-triggered backend call.
	RequestTimeout = 10 * time.Second
)
