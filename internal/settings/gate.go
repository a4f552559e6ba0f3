package settings

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// PINLength is the number of digits a settings PIN has.
const PINLength = 6

var (
	// ErrWrongPIN is returned when the backend rejects a PIN.
	ErrWrongPIN = errors.New("wrong pin")
	// ErrLocked is returned for protected tabs before the gate is unlocked.
	ErrLocked = errors.New("settings locked")
)

// PINVerifier checks a PIN against the backend.
type PINVerifier interface {
	VerifyPIN(ctx context.Context, pin string) (bool, error)
}

// Gate guards the protected settings tabs. One successful PIN unlocks all
// of them until Lock is called.
type Gate struct {
	verifier PINVerifier

	mu       sync.Mutex
	enabled  bool
	unlocked bool
	pending  Tab
	input    []byte
}

// NewGate returns a locked gate. When protection is disabled every tab is
// reachable without a PIN.
func NewGate(v PINVerifier, protection bool) *Gate {
	return &Gate{verifier: v, enabled: protection}
}

// Enabled reports whether PIN protection is on.
func (g *Gate) Enabled() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.enabled
}

// Unlocked reports whether protected tabs are open.
func (g *Gate) Unlocked() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.unlocked
}

// Pending is the tab waiting for a PIN, or "".
func (g *Gate) Pending() Tab {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pending
}

// Open requests tab. It returns true when the tab may be shown now; false
// means a PIN prompt should be displayed for Pending.
func (g *Gate) Open(tab Tab) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !tab.Protected() || g.unlocked {
		return true
	}
	if !g.enabled {
		g.unlocked = true
		return true
	}
	g.pending = tab
	g.input = g.input[:0]
	return false
}

// Require returns ErrLocked unless tab may be shown.
func (g *Gate) Require(tab Tab) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !tab.Protected() || g.unlocked || !g.enabled {
		return nil
	}
	return ErrLocked
}

// Press appends a keypad digit. It reports true once PINLength digits are
// entered, at which point the caller should Submit.
func (g *Gate) Press(digit rune) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if digit < '0' || digit > '9' || len(g.input) >= PINLength {
		return len(g.input) >= PINLength
	}
	g.input = append(g.input, byte(digit))
	return len(g.input) == PINLength
}

// Backspace removes the last entered digit.
func (g *Gate) Backspace() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.input) > 0 {
		g.input = g.input[:len(g.input)-1]
	}
}

// Entered is the number of digits typed so far.
func (g *Gate) Entered() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.input)
}

// Submit verifies the digits entered with Press.
func (g *Gate) Submit(ctx context.Context) (Tab, error) {
	g.mu.Lock()
	pin := string(g.input)
	g.mu.Unlock()
	return g.Verify(ctx, pin)
}

// Verify checks pin and, on success, unlocks the gate and returns the tab
// that was waiting. The entered digits are cleared either way.
func (g *Gate) Verify(ctx context.Context, pin string) (Tab, error) {
	g.mu.Lock()
	if !g.enabled {
		g.unlocked = true
		tab := g.pending
		g.pending = ""
		g.input = g.input[:0]
		g.mu.Unlock()
		return tab, nil
	}
	g.mu.Unlock()

	ok, err := g.verifier.VerifyPIN(ctx, pin)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.input = g.input[:0]
	if err != nil {
		return "", fmt.Errorf("verify pin: %w", err)
	}
	if !ok {
		return "", ErrWrongPIN
	}
	g.unlocked = true
	tab := g.pending
	g.pending = ""
	return tab, nil
}

// Cancel abandons the PIN prompt.
func (g *Gate) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = ""
	g.input = g.input[:0]
}

// Lock closes the protected tabs again.
func (g *Gate) Lock() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.unlocked = false
	g.pending = ""
	g.input = g.input[:0]
}

// SetProtection turns PIN protection on or off. Turning it on locks.
func (g *Gate) SetProtection(on bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.enabled = on
	if on {
		g.unlocked = false
	}
}
