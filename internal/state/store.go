package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/deck/internal/kiosk"
)

// Snapshot represents the latest playback data available to the UI.
type Snapshot struct {
	Player              Player
	HasStatus           bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive poll failures
}

// IsOffline returns true when the backend has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot. The zero value is
// ready to use.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records a now-playing poll. When err is non-nil the previous data is
// kept but the error is recorded for visibility.
func (s *Store) Update(cur *kiosk.CurrentPlayback, err error) {
	s.UpdateAt(time.Now(), cur, err)
}

// UpdateAt is Update with an explicit clock reading.
func (s *Store) UpdateAt(now time.Time, cur *kiosk.CurrentPlayback, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = now
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Player.Sync(now, cur)
	s.snapshot.HasStatus = true
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Advance interpolates progress to now.
func (s *Store) Advance(now time.Time) Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Player.Advance(now)
	return s.snapshot.Player
}

// Seek records a position accepted by the backend.
func (s *Store) Seek(now time.Time, pos time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Player.Seek(now, pos)
}

// SetPlaying applies an optimistic play/pause before the next poll.
func (s *Store) SetPlaying(now time.Time, playing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Player.Advance(now)
	s.snapshot.Player.Playing = playing
}

// SetShuffle applies an optimistic shuffle change.
func (s *Store) SetShuffle(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Player.Shuffle = on
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
