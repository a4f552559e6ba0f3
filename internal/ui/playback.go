package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/deck/internal/settings"
)

// callRefresh is call followed by a now-playing poll after delay.
func (m Model) callRefresh(ok, fail string, fn func(context.Context) error, delay time.Duration) tea.Cmd {
	parent := m.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, RequestTimeout)
		defer cancel()
		return resultMsg{ok: ok, fail: fail, err: fn(ctx), refresh: true, delay: delay}
	}
}

// handleTransportKey applies playback keys. Local state is updated first so
// the header reacts immediately; the follow-up poll corrects it if the
// backend disagrees. Seeks wait for the backend instead.
func (m Model) handleTransportKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	if m.backend == nil {
		return m, nil, false
	}
	backend := m.backend
	now := time.Now()

	switch {
	case key.Matches(msg, m.keys.PlayPause):
		playing := !m.player.Playing
		m.setPlaying(now, playing)
		cmd := m.callRefresh("", "error.playback", func(ctx context.Context) error {
			if playing {
				return backend.Play(ctx)
			}
			return backend.Pause(ctx)
		}, 0)
		return m, cmd, true

	case key.Matches(msg, m.keys.Next):
		return m, m.callRefresh("", "error.nextTrack", backend.Next, SkipRefreshDelay), true

	case key.Matches(msg, m.keys.Previous):
		return m, m.callRefresh("", "error.previousTrack", backend.Previous, SkipRefreshDelay), true

	case key.Matches(msg, m.keys.Shuffle):
		on := !m.player.Shuffle
		if m.store != nil {
			m.store.SetShuffle(on)
		}
		m.player.Shuffle = on
		cmd := m.callRefresh(ternary(on, "status.shuffleOn", "status.shuffleOff"), "error.playback",
			func(ctx context.Context) error { return backend.SetShuffle(ctx, on) }, 0)
		return m, cmd, true

	case key.Matches(msg, m.keys.SeekBack), key.Matches(msg, m.keys.SeekAhead):
		if !m.player.HasTrack() || m.player.Duration <= 0 {
			return m, nil, true
		}
		step := SeekStep
		if key.Matches(msg, m.keys.SeekBack) {
			step = -SeekStep
		}
		target := m.player
		target.Seek(now, m.player.Progress+step)
		return m, m.seekCmd(target.Progress), true

	case key.Matches(msg, m.keys.VolUp), key.Matches(msg, m.keys.VolDown):
		step := settings.VolumeStep
		if key.Matches(msg, m.keys.VolDown) {
			step = -step
		}
		vol := settings.ClampPercent(m.player.Volume + step)
		m.player.Volume = vol
		return m, m.callRefresh("", "error.volume", func(ctx context.Context) error {
			return backend.SetSpotifyVolume(ctx, vol)
		}, 0), true
	}
	return m, nil, false
}

// seekedMsg reports a seek request. The local position only moves once the
// backend has accepted it.
type seekedMsg struct {
	pos time.Duration
	err error
}

func (m Model) seekCmd(pos time.Duration) tea.Cmd {
	parent := m.ctx
	backend := m.backend
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, RequestTimeout)
		defer cancel()
		return seekedMsg{pos: pos, err: backend.Seek(ctx, pos.Milliseconds())}
	}
}

func (m Model) handleSeeked(msg seekedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m.fail("error.seek", msg.err)
	}
	now := time.Now()
	if m.store != nil {
		m.store.Seek(now, msg.pos)
		m.player = m.store.Snapshot().Player
	} else {
		m.player.Seek(now, msg.pos)
	}
	return m, nil
}

func (m *Model) setPlaying(now time.Time, playing bool) {
	if m.store != nil {
		m.store.SetPlaying(now, playing)
	}
	m.player.Playing = playing
}
