// Package app is the composition root for deck.
//
// # Overview
//
// Open wires configuration into the long-lived services: the slog file
// logger, the kiosk REST client, the library cache (bbolt, SQLite or memory)
// and the cached library service. Run adds the now-playing poller and the
// Bubble Tea UI on top of them; the CLI subcommands use Open directly.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> Open()              logger, kiosk client, cache, library
//	       ├─────> prefs.Load()        theme, language, last view
//	       ├─────> StartPoller()       /api/current every 5s into state.Store
//	       ├─────> ui.Run()            blocks until quit
//	       └─────> prefs.Save()        remembers the last view
//
// # Polling Behavior
//
// The poller fetches now playing immediately and then on every interval.
// Trigger forces an early poll and SetInterval restarts the wait with a new
// cadence. Failures are recorded on the store, which counts consecutive
// failures for the offline indicator, and polling simply continues: there
// is no retry or backoff.
//
// The UI reads the store once a second and interpolates the playback
// position in between, so slow backend calls never stall rendering.
package app
