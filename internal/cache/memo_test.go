package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemo_ExpiresAndInvalidates(t *testing.T) {
	clock := newClock()
	m := NewMemo[[]string](time.Minute, clock.Now)

	_, ok := m.Get()
	assert.False(t, ok)

	m.Set([]string{"hdmi", "jack"})
	v, ok := m.Get()
	assert.True(t, ok)
	assert.Equal(t, []string{"hdmi", "jack"}, v)

	clock.Advance(59 * time.Second)
	_, ok = m.Get()
	assert.True(t, ok)

	clock.Advance(time.Second)
	_, ok = m.Get()
	assert.False(t, ok, "value at TTL is stale")

	m.Set([]string{"usb"})
	m.Invalidate()
	_, ok = m.Get()
	assert.False(t, ok)
}
