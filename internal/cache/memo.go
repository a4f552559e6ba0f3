package cache

import (
	"sync"
	"time"
)

// Memo holds a single value in memory for a short TTL.
type Memo[T any] struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	value T
	at    time.Time
	valid bool
}

// NewMemo returns an empty Memo. A nil clock uses time.Now.
func NewMemo[T any](ttl time.Duration, now func() time.Time) *Memo[T] {
	if now == nil {
		now = time.Now
	}
	return &Memo[T]{ttl: ttl, now: now}
}

// Get returns the value if it was set less than ttl ago.
func (m *Memo[T]) Get() (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero T
	if !m.valid {
		return zero, false
	}
	if m.now().Sub(m.at) >= m.ttl {
		m.valid = false
		m.value = zero
		return zero, false
	}
	return m.value, true
}

// Set stores v and restarts the TTL.
func (m *Memo[T]) Set(v T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = v
	m.at = m.now()
	m.valid = true
}

// Invalidate drops the stored value.
func (m *Memo[T]) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero T
	m.value = zero
	m.valid = false
}
