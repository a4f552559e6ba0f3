package mcpserver_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zmb3/spotify/v2"

	"github.com/five82/deck/internal/kiosk"
	"github.com/five82/deck/internal/library"
	"github.com/five82/deck/internal/mcpserver"
)

type fakePlayer struct {
	current *kiosk.CurrentPlayback
	calls   []string
	volume  int
}

func (f *fakePlayer) Current(context.Context) (*kiosk.CurrentPlayback, error) { return f.current, nil }
func (f *fakePlayer) Play(context.Context) error                             { return f.record("play") }
func (f *fakePlayer) Pause(context.Context) error                            { return f.record("pause") }
func (f *fakePlayer) Next(context.Context) error                             { return f.record("next") }
func (f *fakePlayer) Previous(context.Context) error                         { return f.record("previous") }

func (f *fakePlayer) SetShuffle(_ context.Context, on bool) error {
	if on {
		return f.record("shuffle:on")
	}
	return f.record("shuffle:off")
}

func (f *fakePlayer) SetSpotifyVolume(_ context.Context, percent int) error {
	f.volume = percent
	return nil
}

func (f *fakePlayer) record(call string) error {
	f.calls = append(f.calls, call)
	return nil
}

type fakeLibrary struct {
	playlists []kiosk.Playlist
	refreshed bool
}

func (f *fakeLibrary) Playlists(context.Context) ([]kiosk.Playlist, error) { return f.playlists, nil }
func (f *fakeLibrary) Artists(context.Context) ([]kiosk.Artist, error)     { return nil, nil }

func (f *fakeLibrary) RefreshPlaylists(ctx context.Context) ([]kiosk.Playlist, error) {
	f.refreshed = true
	return f.playlists, nil
}

func (f *fakeLibrary) RefreshArtists(context.Context) ([]kiosk.Artist, error) { return nil, nil }

func (f *fakeLibrary) Search(_ context.Context, query string) ([]library.Result, error) {
	var candidates []library.Result
	for _, p := range f.playlists {
		candidates = append(candidates, library.Result{Kind: library.KindPlaylist, ID: p.ID, Name: p.Name})
	}
	return library.Rank(query, candidates), nil
}

type fakeDevices struct {
	api         []kiosk.ConnectDevice
	transferred []spotify.ID
}

func (f *fakeDevices) ConnectDevices(context.Context) ([]kiosk.ConnectDevice, error) { return f.api, nil }
func (f *fakeDevices) LocalDevices(context.Context) ([]kiosk.LocalDevice, error)     { return nil, nil }

func (f *fakeDevices) TransferPlayback(_ context.Context, id spotify.ID) error {
	f.transferred = append(f.transferred, id)
	return nil
}

func (f *fakeDevices) TransferPlaybackLocal(context.Context, string) error { return nil }

func (f *fakeDevices) ActivateLocalDevice(context.Context, kiosk.LocalDevice) (kiosk.ActivateResult, error) {
	return kiosk.ActivateResult{}, nil
}

func call(t *testing.T, deps mcpserver.Deps, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	s := mcpserver.New(deps, "test")
	tool := s.GetTool(name)
	require.NotNil(t, tool, "tool %s should exist", name)
	res, err := tool.Handler(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	})
	require.NoError(t, err, "handlers report failures in the result, not as errors")
	return res
}

func text(res *mcp.CallToolResult) string {
	return res.Content[0].(mcp.TextContent).Text
}

func newDeps() (mcpserver.Deps, *fakePlayer, *fakeLibrary, *fakeDevices) {
	p := &fakePlayer{current: &kiosk.CurrentPlayback{
		Playing:       true,
		VolumePercent: 40,
		Track:         &kiosk.CurrentTrack{Name: "Song", Artist: "Band", DurationMS: 200000, ProgressMS: 1000},
	}}
	l := &fakeLibrary{playlists: []kiosk.Playlist{{ID: "p1", Name: "Road Trip"}, {ID: "p2", Name: "Chill"}}}
	d := &fakeDevices{api: []kiosk.ConnectDevice{{ID: "d1", Name: "Kitchen"}}}
	return mcpserver.Deps{Player: p, Library: l, Devices: d}, p, l, d
}

func TestNowPlaying(t *testing.T) {
	deps, _, _, _ := newDeps()
	res := call(t, deps, "now_playing", nil)
	require.False(t, res.IsError)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(text(res)), &got))
	assert.Equal(t, true, got["playing"])
	assert.EqualValues(t, 40, got["volume_percent"])
	assert.Equal(t, "Song", got["track"].(map[string]any)["name"])
}

func TestNowPlaying_Idle(t *testing.T) {
	deps, p, _, _ := newDeps()
	p.current = &kiosk.CurrentPlayback{}
	res := call(t, deps, "now_playing", nil)
	require.False(t, res.IsError)
	assert.NotContains(t, text(res), "track")
}

func TestPlayback(t *testing.T) {
	deps, p, _, _ := newDeps()
	for _, action := range []string{"pause", "next", "shuffle_on"} {
		res := call(t, deps, "playback", map[string]any{"action": action})
		assert.False(t, res.IsError, action)
	}
	assert.Equal(t, []string{"pause", "next", "shuffle:on"}, p.calls)

	res := call(t, deps, "playback", map[string]any{"action": "rewind"})
	assert.True(t, res.IsError)
	assert.Contains(t, text(res), "unknown action")
}

func TestSetVolume_Validates(t *testing.T) {
	deps, p, _, _ := newDeps()

	res := call(t, deps, "set_volume", map[string]any{"volume": 150.0})
	assert.True(t, res.IsError)

	res = call(t, deps, "set_volume", map[string]any{"volume": 30.0})
	assert.False(t, res.IsError)
	assert.Equal(t, 30, p.volume)
}

func TestListPlaylists_Refresh(t *testing.T) {
	deps, _, l, _ := newDeps()
	res := call(t, deps, "list_playlists", map[string]any{"refresh": true})
	require.False(t, res.IsError)
	assert.True(t, l.refreshed)
	assert.Contains(t, text(res), "Road Trip")
}

func TestSearchLibrary(t *testing.T) {
	deps, _, _, _ := newDeps()

	res := call(t, deps, "search_library", map[string]any{"query": ""})
	assert.True(t, res.IsError)

	res = call(t, deps, "search_library", map[string]any{"query": "road"})
	require.False(t, res.IsError)
	assert.Contains(t, text(res), `"id": "p1"`)
	assert.NotContains(t, text(res), "Chill")
}

func TestTransferPlayback(t *testing.T) {
	deps, _, _, d := newDeps()

	res := call(t, deps, "transfer_playback", map[string]any{"device": "kitchen"})
	require.False(t, res.IsError, text(res))
	assert.Equal(t, []spotify.ID{"d1"}, d.transferred)

	res = call(t, deps, "transfer_playback", map[string]any{"device": "garage"})
	assert.True(t, res.IsError)
	assert.Contains(t, text(res), "no such device")
}
