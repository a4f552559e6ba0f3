// Package state holds the playback state shared between the now-playing
// poller and the UI.
//
// # Overview
//
// The poller calls Store.Update every few seconds with the /api/current
// payload. Between polls the UI calls Store.Advance on a one second tick so
// the progress bar moves smoothly. Player keeps progress within
// [0, Duration] on every path: sync, advance and seek.
//
// # Concurrency Model
//
// Store uses a readers-writer lock. Update, Advance and Seek take the write
// lock; Snapshot takes the read lock and returns a value copy. The lock is
// never held during network I/O or rendering.
//
// # Update Semantics
//
//	// Success: player synced, failure counter reset
//	store.Update(current, nil)
//
//	// Error: previous player kept, error recorded
//	store.Update(nil, err)
//
// Snapshot.IsOffline reports two or more consecutive failures so the header
// can show that the backend is unreachable while keeping the last known
// track on screen.
//
// # Testing Considerations
//
// The zero Store is ready to use. UpdateAt, Advance and Seek take explicit
// times so tests never sleep.
package state
