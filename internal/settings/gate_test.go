package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	pin   string
	err   error
	calls []string
}

func (f *fakeVerifier) VerifyPIN(_ context.Context, pin string) (bool, error) {
	f.calls = append(f.calls, pin)
	if f.err != nil {
		return false, f.err
	}
	return pin == f.pin, nil
}

func TestGate_UnprotectedTabsAlwaysOpen(t *testing.T) {
	g := NewGate(&fakeVerifier{}, true)
	assert.True(t, g.Open(TabTheme))
	assert.True(t, g.Open(TabDevices))
	assert.NoError(t, g.Require(TabDevices))
	assert.False(t, g.Unlocked())
}

func TestGate_PINUnlocksAllProtectedTabs(t *testing.T) {
	v := &fakeVerifier{pin: "000000"}
	g := NewGate(v, true)
	ctx := context.Background()

	require.False(t, g.Open(TabSystem))
	assert.Equal(t, TabSystem, g.Pending())
	assert.ErrorIs(t, g.Require(TabSystem), ErrLocked)

	for _, d := range "12345" {
		assert.False(t, g.Press(d))
	}
	g.Backspace()
	assert.Equal(t, 4, g.Entered())
	assert.False(t, g.Press('x'), "non-digits are ignored")
	assert.False(t, g.Press('5'))
	assert.True(t, g.Press('6'))
	assert.True(t, g.Press('7'), "input is capped at six digits")

	_, err := g.Submit(ctx)
	assert.ErrorIs(t, err, ErrWrongPIN)
	assert.Equal(t, 0, g.Entered(), "digits cleared after a wrong pin")
	assert.Equal(t, []string{"123456"}, v.calls)

	tab, err := g.Verify(ctx, "000000")
	require.NoError(t, err)
	assert.Equal(t, TabSystem, tab)
	assert.Empty(t, g.Pending())

	for _, tab := range []Tab{TabBluetooth, TabVolume, TabAccount} {
		assert.True(t, g.Open(tab))
	}

	g.Lock()
	assert.False(t, g.Open(TabVolume))
}

func TestGate_VerifierErrorsStayLocked(t *testing.T) {
	g := NewGate(&fakeVerifier{err: errors.New("offline")}, true)
	g.Open(TabAccount)

	_, err := g.Verify(context.Background(), "000000")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrWrongPIN)
	assert.False(t, g.Unlocked())
}

func TestGate_ProtectionOff(t *testing.T) {
	v := &fakeVerifier{}
	g := NewGate(v, false)

	assert.True(t, g.Open(TabBluetooth))
	assert.True(t, g.Unlocked())
	assert.NoError(t, g.Require(TabSystem))
	assert.Empty(t, v.calls)

	g.SetProtection(true)
	assert.False(t, g.Unlocked(), "enabling protection re-locks")
	assert.False(t, g.Open(TabBluetooth))

	g.SetProtection(false)
	tab, err := g.Verify(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, TabBluetooth, tab)
	assert.Empty(t, v.calls)
}

func TestGate_Cancel(t *testing.T) {
	g := NewGate(&fakeVerifier{}, true)
	g.Open(TabVolume)
	g.Press('1')
	g.Cancel()
	assert.Empty(t, g.Pending())
	assert.Zero(t, g.Entered())
}
