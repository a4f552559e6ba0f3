package ui

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zmb3/spotify/v2"

	"github.com/five82/deck/internal/devices"
	"github.com/five82/deck/internal/kiosk"
	"github.com/five82/deck/internal/prefs"
	"github.com/five82/deck/internal/settings"
	"github.com/five82/deck/internal/state"
	"github.com/five82/deck/internal/view"
)

// fakeBackend records the calls the tests care about. Methods it does not
// override panic through the nil embedded interface.
type fakeBackend struct {
	Backend

	pin string

	mu        sync.Mutex
	played    []kiosk.PlayTrackRequest
	volumes   []int
	limits    []int
	languages []string
	outputs   []string
	seeks     []int64
	seekErr   error
}

func (f *fakeBackend) Seek(_ context.Context, ms int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seeks = append(f.seeks, ms)
	return f.seekErr
}

func (f *fakeBackend) VerifyPIN(_ context.Context, pin string) (bool, error) {
	return pin == f.pin, nil
}

func (f *fakeBackend) PlayTrack(_ context.Context, req kiosk.PlayTrackRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.played = append(f.played, req)
	return nil
}

func (f *fakeBackend) SetSystemVolume(_ context.Context, v int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.volumes = append(f.volumes, v)
	return nil
}

func (f *fakeBackend) SetMaxVolume(_ context.Context, v int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.limits = append(f.limits, v)
	return nil
}

func (f *fakeBackend) SetDefaultVolume(_ context.Context, v int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.limits = append(f.limits, v)
	return nil
}

func (f *fakeBackend) SetLanguage(_ context.Context, lang string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.languages = append(f.languages, lang)
	return nil
}

func (f *fakeBackend) AudioDevices(context.Context) ([]kiosk.AudioDevice, error) {
	return []kiosk.AudioDevice{{ID: "hdmi", Name: "HDMI", IsDefault: true}, {ID: "jack", Name: "Headphones"}}, nil
}

func (f *fakeBackend) SetAudioOutput(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outputs = append(f.outputs, id)
	return nil
}

func (f *fakeBackend) SystemVolume(context.Context) (int, error) { return 35, nil }

func (f *fakeBackend) VolumeSettings(context.Context) (kiosk.VolumeSettings, error) {
	return kiosk.VolumeSettings{DefaultVolume: 90, MaxVolume: 80}, nil
}

func (f *fakeBackend) NetworkStatus(context.Context) (kiosk.NetworkStatus, error) {
	return kiosk.NetworkStatus{IP: "10.0.0.9", Internet: true}, nil
}

func (f *fakeBackend) PowerSaving(context.Context) (bool, error) { return true, nil }

func (f *fakeBackend) DeviceInfo(context.Context) (kiosk.DeviceInfo, error) {
	return kiosk.DeviceInfo{Hostname: "kiosk", PlayerName: "Living room"}, nil
}

func newTestModel(t *testing.T, backend Backend) Model {
	t.Helper()
	p := prefs.Defaults()
	m := New(Options{
		Backend:   backend,
		Store:     &state.Store{},
		Prefs:     p,
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
		View:      view.State{Mode: view.ModePlaylists},
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestToastExpiryIgnoresReplacedToast(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = m.toastInfo("first")
	firstID := m.toast.id
	m, _ = m.toastInfo("second")

	next, _ := m.Update(toastExpiredMsg(firstID))
	m = next.(Model)
	assert.Equal(t, "second", m.toast.text)

	next, _ = m.Update(toastExpiredMsg(m.toast.id))
	m = next.(Model)
	assert.Empty(t, m.renderToast())
}

func TestAccountErrorShownOnce(t *testing.T) {
	m := newTestModel(t, nil)
	forbidden := &kiosk.APIError{Status: http.StatusForbidden, ErrorType: "forbidden"}

	next, _ := m.applySnapshot(state.Snapshot{LastError: forbidden})
	m = next.(Model)
	require.IsType(t, messageModal{}, m.modal)

	next, _ = m.Update(runes("x"))
	m = next.(Model)
	assert.Nil(t, m.modal)

	next, _ = m.applySnapshot(state.Snapshot{LastError: forbidden})
	m = next.(Model)
	assert.Nil(t, m.modal, "dialog should not reopen")
}

func TestFailIgnoresCancellation(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := m.fail("error.playback", context.Canceled)
	assert.Nil(t, cmd)
	assert.Empty(t, m.toast.text)

	m, cmd = m.fail("error.playback", errors.New("boom"))
	assert.NotNil(t, cmd)
	assert.Equal(t, toastError, m.toast.kind)
	assert.Equal(t, "Something went wrong during playback", m.toast.text)
}

func TestStaleDetailLoadIsDropped(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = m.navigate(m.browser.view.SelectPlaylist("p2"))

	stale := listLoadedMsg{
		action: view.Action{Kind: view.LoadPlaylistTracks, ID: "p1"},
		tracks: []kiosk.Track{{Name: "old"}},
	}
	next, _ := m.Update(stale)
	m = next.(Model)
	assert.True(t, m.browser.loadingDetail)
	assert.Empty(t, m.browser.tracks)

	fresh := listLoadedMsg{
		action: view.Action{Kind: view.LoadPlaylistTracks, ID: "p2"},
		tracks: []kiosk.Track{{Name: "new"}},
	}
	next, _ = m.Update(fresh)
	m = next.(Model)
	assert.False(t, m.browser.loadingDetail)
	require.Len(t, m.browser.tracks, 1)
	assert.Equal(t, "new", m.browser.tracks[0].Name)
	assert.Equal(t, "view=playlists&playlist=p2", m.prefs.LastView)
}

func TestPlayRowBuildsContext(t *testing.T) {
	fb := &fakeBackend{}
	m := newTestModel(t, fb)
	m.browser.tracks = []kiosk.Track{
		{URI: "spotify:track:a"},
		{URI: "spotify:track:b"},
		{URI: "spotify:track:c"},
	}

	tests := []struct {
		name string
		view view.State
		want kiosk.PlayTrackRequest
	}{
		{
			name: "playlist",
			view: view.State{Mode: view.ModePlaylists, PlaylistID: "pl"},
			want: kiosk.PlayTrackRequest{URI: "spotify:track:b", PlaylistID: "pl"},
		},
		{
			name: "album",
			view: view.State{Mode: view.ModeArtists, ArtistID: "ar", AlbumID: "al"},
			want: kiosk.PlayTrackRequest{URI: "spotify:track:b", AlbumID: "al"},
		},
		{
			name: "top tracks",
			view: view.State{Mode: view.ModeArtists, ArtistID: "ar"},
			want: kiosk.PlayTrackRequest{
				URI:       "spotify:track:b",
				TrackURIs: []spotify.URI{"spotify:track:b", "spotify:track:c"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb.played = nil
			m.browser.view = tt.view.Normalize()
			_, cmd := m.playRow(row{uri: "spotify:track:b", index: 1})
			require.NotNil(t, cmd)
			msg := cmd().(resultMsg)
			require.NoError(t, msg.err)
			assert.True(t, msg.refresh)
			assert.Equal(t, SkipRefreshDelay, msg.delay)
			require.Len(t, fb.played, 1)
			assert.Equal(t, tt.want, fb.played[0])
		})
	}
}

func TestSettingsGateUnlocksProtectedTab(t *testing.T) {
	fb := &fakeBackend{pin: "123456"}
	m := newTestModel(t, fb)

	next, _ := m.Update(runes(","))
	m = next.(Model)
	require.True(t, m.settings.open)
	assert.Equal(t, settings.TabTheme, m.settings.tab)

	m, _ = m.enterTab(settings.TabSystem)
	require.IsType(t, gateModal{}, m.modal)
	assert.Equal(t, settings.TabTheme, m.settings.tab)

	var cmd tea.Cmd
	for _, d := range "12345" {
		next, cmd = m.Update(runes(string(d)))
		m = next.(Model)
		assert.Nil(t, cmd)
	}
	next, cmd = m.Update(runes("9"))
	m = next.(Model)
	require.NotNil(t, cmd)
	res := cmd().(pinResultMsg)
	require.ErrorIs(t, res.err, settings.ErrWrongPIN)
	next, _ = m.Update(res)
	m = next.(Model)
	require.Equal(t, gateModal{wrong: true}, m.modal)

	for _, d := range "123456" {
		next, cmd = m.Update(runes(string(d)))
		m = next.(Model)
	}
	require.NotNil(t, cmd)
	res = cmd().(pinResultMsg)
	require.NoError(t, res.err)
	next, _ = m.Update(res)
	m = next.(Model)
	assert.Nil(t, m.modal)
	assert.Equal(t, settings.TabSystem, m.settings.tab)

	next, _ = m.Update(systemLoadedMsg{network: kiosk.NetworkStatus{IP: "10.0.0.9"}})
	m = next.(Model)
	assert.Equal(t, "10.0.0.9", m.settings.network.IP)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	assert.False(t, m.settings.open)
	assert.False(t, m.gate.Unlocked(), "closing settings locks the gate")
}

func TestSettingsTickFromOldTabIsIgnored(t *testing.T) {
	fb := &fakeBackend{}
	m := newTestModel(t, fb)
	m.settings.open = true
	m, _ = m.enterTab(settings.TabDevices)
	old := m.settings.pollSeq
	m, _ = m.enterTab(settings.TabTheme)

	_, cmd := m.Update(settingsTickMsg{seq: old, tab: settings.TabDevices})
	assert.Nil(t, cmd)
}

func TestVolumeSliderDebounces(t *testing.T) {
	fb := &fakeBackend{}
	m := newTestModel(t, fb)
	m.settings.volumeLoaded = true
	m.settings.systemVolume = 50

	m, first := m.adjustSystemVolume(settings.VolumeStep)
	m, second := m.adjustSystemVolume(settings.VolumeStep)
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, 60, m.settings.systemVolume)

	next, cmd, ok := m.updateSettings(volumeFlushMsg{seq: 1})
	require.True(t, ok)
	assert.Nil(t, cmd, "superseded input is not written")

	_, cmd, _ = next.updateSettings(volumeFlushMsg{seq: 2})
	require.NotNil(t, cmd)
	require.NoError(t, cmd().(resultMsg).err)
	assert.Equal(t, []int{60}, fb.volumes)
}

func TestVolumeLimitsStayOrdered(t *testing.T) {
	fb := &fakeBackend{}
	m := newTestModel(t, fb)
	msg := m.loadVolumeCmd()().(volumeLoadedMsg)
	require.NoError(t, msg.err)
	assert.Equal(t, settings.Limits{Default: 80, Max: 80}, msg.limits)

	m, _, _ = m.updateSettings(msg)
	m, _ = m.adjustLimits(m.settings.limits.WithMax(60))
	assert.Equal(t, settings.Limits{Default: 60, Max: 60}, m.settings.limits)

	_, cmd, _ := m.updateSettings(volumeFlushMsg{limits: true, seq: 1})
	require.NotNil(t, cmd)
	require.NoError(t, cmd().(resultMsg).err)
	assert.Equal(t, []int{60, 60}, fb.limits)
}

func TestAudioCooldownShowsWait(t *testing.T) {
	m := newTestModel(t, &fakeBackend{})
	m.settings.switching = "jack"
	next, _, ok := m.updateSettings(audioSwitchedMsg{err: &devices.CooldownError{Remaining: 1500 * time.Millisecond}})
	require.True(t, ok)
	assert.Empty(t, next.settings.switching)
	assert.Equal(t, "Wait 2 more second(s)...", next.toast.text)
}

func TestAudioSwitchReloadFailureIsNotReportedAsFailedSwitch(t *testing.T) {
	m := newTestModel(t, &fakeBackend{})
	m.settings.switching = "jack"
	res := devices.SwitchResult{
		Devices:   []kiosk.AudioDevice{{ID: "jack", Name: "Headphones", IsDefault: true}},
		ReloadErr: errors.New("load volume: timeout"),
	}
	next, _, ok := m.updateSettings(audioSwitchedMsg{res: res})
	require.True(t, ok)
	assert.Empty(t, next.settings.switching)
	assert.Empty(t, next.toast.text)
	assert.Equal(t, res.Devices, next.settings.audioDevices)
}

func TestAudioSwitchUpdatesDevices(t *testing.T) {
	fb := &fakeBackend{}
	m := newTestModel(t, fb)
	m, cmd := m.switchAudio(kiosk.AudioDevice{ID: "jack", Name: "Headphones"})
	require.NotNil(t, cmd)
	assert.Equal(t, "jack", m.settings.switching)

	msg := cmd().(audioSwitchedMsg)
	require.NoError(t, msg.err)
	m, _, _ = m.updateSettings(msg)
	assert.Empty(t, m.settings.switching)
	assert.Equal(t, []string{"jack"}, fb.outputs)
	assert.Equal(t, 35, m.settings.systemVolume)
	assert.Len(t, m.settings.audioDevices, 2)
}

func TestToggleLanguage(t *testing.T) {
	fb := &fakeBackend{}
	m := newTestModel(t, fb)
	m, cmd := m.toggleLanguage()
	assert.Equal(t, "nl", m.tr.Lang())
	assert.Equal(t, "nl", m.prefs.Language)
	require.NotNil(t, cmd)
	require.NoError(t, cmd().(resultMsg).err)
	assert.Equal(t, []string{"nl"}, fb.languages)

	saved, err := prefs.Load(m.prefsPath)
	require.NoError(t, err)
	assert.Equal(t, "nl", saved.Language)
}

func TestApplyPrefsSavesToDefaultPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	m := newTestModel(t, nil)
	m.prefsPath = ""

	m, _ = m.applyPrefs(settings.ToggleMode(m.prefs))
	require.Equal(t, "dark", m.prefs.Theme)

	saved, err := prefs.Load("")
	require.NoError(t, err)
	assert.Equal(t, "dark", saved.Theme)
}

func TestSeekMovesProgressOnlyWhenAccepted(t *testing.T) {
	cur := &kiosk.CurrentPlayback{
		Playing: true,
		Track:   &kiosk.CurrentTrack{ID: "t1", Name: "Song", DurationMS: 200000, ProgressMS: 30000},
	}
	tests := []struct {
		name    string
		seekErr error
		want    time.Duration
	}{
		{"accepted", nil, 40 * time.Second},
		{"rejected", errors.New("seek failed"), 30 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := &fakeBackend{seekErr: tt.seekErr}
			m := newTestModel(t, fb)
			m.store.Update(cur, nil)
			m.player = m.store.Snapshot().Player

			m, cmd, handled := m.handleTransportKey(tea.KeyMsg{Type: tea.KeyRight})
			require.True(t, handled)
			require.NotNil(t, cmd)
			assert.Equal(t, 30*time.Second, m.store.Snapshot().Player.Progress, "no local move before the reply")

			next, _ := m.Update(cmd())
			m = next.(Model)
			assert.Equal(t, []int64{40000}, fb.seeks)
			assert.Equal(t, tt.want, m.store.Snapshot().Player.Progress)
			assert.Equal(t, tt.want, m.player.Progress)
		})
	}
}

func TestLogsOverlaySearch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.log")
	content := `{"time":"2026-05-01T08:00:00Z","level":"INFO","msg":"poll ok"}
{"time":"2026-05-01T08:00:01Z","level":"WARN","msg":"request failed","action":"error.playback"}
{"time":"2026-05-01T08:00:02Z","level":"INFO","msg":"playback transferred"}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	m := newTestModel(t, nil)
	m.logFile = path
	m, cmd := m.openLogs()
	require.NotNil(t, cmd)
	next, tick := m.Update(cmd())
	m = next.(Model)
	require.NotNil(t, tick)
	require.Len(t, m.logs.entries, 3)
	assert.True(t, m.logs.follow)

	next, _ = m.Update(runes("/"))
	m = next.(Model)
	require.True(t, m.logs.searchActive)
	for _, r := range "PLAYBACK" {
		next, _ = m.Update(runes(string(r)))
		m = next.(Model)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	assert.Equal(t, []int{1, 2}, m.logs.matches)
	assert.False(t, m.logs.follow)

	next, _ = m.Update(runes("n"))
	m = next.(Model)
	assert.Equal(t, 1, m.logs.matchIdx)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	assert.Nil(t, m.logs.searchRegex)
	assert.True(t, m.logs.open)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	assert.False(t, m.logs.open)
}
