package library

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zmb3/spotify/v2"

	"github.com/five82/deck/internal/cache"
	"github.com/five82/deck/internal/kiosk"
)

type fakeSource struct {
	calls     map[string]int
	playlists []kiosk.Playlist
	artists   []kiosk.Artist
	tracks    []kiosk.Track
	albums    []kiosk.Album
	err       error
	artistErr error
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		calls:     map[string]int{},
		playlists: []kiosk.Playlist{{ID: "p1", Name: "Morning Coffee"}, {ID: "p2", Name: "Workout"}},
		artists:   []kiosk.Artist{{ID: "a1", Name: "Radiohead"}, {ID: "a2", Name: "Röyksopp"}},
		tracks:    []kiosk.Track{{ID: "t1", URI: "spotify:track:t1", Name: "Airbag"}},
		albums:    []kiosk.Album{{ID: "al1", Name: "OK Computer"}},
	}
}

func (f *fakeSource) Playlists(context.Context) ([]kiosk.Playlist, error) {
	f.calls["playlists"]++
	return f.playlists, f.err
}

func (f *fakeSource) PlaylistTracks(_ context.Context, id spotify.ID) ([]kiosk.Track, error) {
	f.calls["playlist:"+string(id)]++
	return f.tracks, f.err
}

func (f *fakeSource) Artists(context.Context) ([]kiosk.Artist, error) {
	f.calls["artists"]++
	if f.artistErr != nil {
		return nil, f.artistErr
	}
	return f.artists, f.err
}

func (f *fakeSource) ArtistTopTracks(_ context.Context, id spotify.ID) ([]kiosk.Track, error) {
	f.calls["top:"+string(id)]++
	return f.tracks, f.err
}

func (f *fakeSource) ArtistAlbums(_ context.Context, id spotify.ID) ([]kiosk.Album, error) {
	f.calls["albums:"+string(id)]++
	return f.albums, f.err
}

func (f *fakeSource) AlbumTracks(_ context.Context, id spotify.ID) ([]kiosk.Track, error) {
	f.calls["album:"+string(id)]++
	return f.tracks, f.err
}

func newService(src Source) (*Service, *cache.Cache) {
	c := cache.New(cache.NewMemoryStore())
	return NewService(src, c, nil), c
}

func TestService_CachesAfterFirstFetch(t *testing.T) {
	src := newFakeSource()
	svc, _ := newService(src)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, err := svc.Playlists(ctx)
		require.NoError(t, err)
		assert.Equal(t, src.playlists, got)

		tracks, err := svc.PlaylistTracks(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, src.tracks, tracks)

		_, err = svc.ArtistTopTracks(ctx, "a1")
		require.NoError(t, err)
		_, err = svc.ArtistAlbums(ctx, "a1")
		require.NoError(t, err)
		_, err = svc.AlbumTracks(ctx, "al1")
		require.NoError(t, err)
	}

	assert.Equal(t, map[string]int{
		"playlists":   1,
		"playlist:p1": 1,
		"top:a1":      1,
		"albums:a1":   1,
		"album:al1":   1,
	}, src.calls)
}

func TestService_ErrorsAreNotCached(t *testing.T) {
	src := newFakeSource()
	src.err = errors.New("backend down")
	svc, c := newService(src)

	_, err := svc.Playlists(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load playlists")

	var v []kiosk.Playlist
	assert.False(t, c.Get(cache.KeyPlaylists, &v))

	src.err = nil
	got, err := svc.Playlists(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 2, src.calls["playlists"])
}

func TestService_EmptyListIsCachedAsEmpty(t *testing.T) {
	src := newFakeSource()
	src.playlists = nil
	svc, _ := newService(src)

	got, err := svc.Playlists(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, _ = svc.Playlists(context.Background())
	assert.Equal(t, 1, src.calls["playlists"])
}

func TestService_RefreshClearsOnlyItsScope(t *testing.T) {
	src := newFakeSource()
	svc, _ := newService(src)
	ctx := context.Background()

	_, _ = svc.Playlists(ctx)
	_, _ = svc.PlaylistTracks(ctx, "p1")
	_, _ = svc.Artists(ctx)
	_, _ = svc.ArtistAlbums(ctx, "a1")

	_, err := svc.RefreshPlaylists(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls["playlists"])

	_, _ = svc.PlaylistTracks(ctx, "p1")
	assert.Equal(t, 2, src.calls["playlist:p1"], "playlist tracks refetched after refresh")

	_, _ = svc.ArtistAlbums(ctx, "a1")
	assert.Equal(t, 1, src.calls["albums:a1"], "artist data kept by playlist refresh")

	_, err = svc.RefreshArtists(ctx)
	require.NoError(t, err)
	_, _ = svc.ArtistAlbums(ctx, "a1")
	assert.Equal(t, 2, src.calls["albums:a1"])
	assert.Equal(t, 2, src.calls["artists"])
}

func TestService_Search(t *testing.T) {
	src := newFakeSource()
	svc, _ := newService(src)

	got, err := svc.Search(context.Background(), "radio")
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, Result{Kind: KindArtist, ID: "a1", Name: "Radiohead", Score: 10}, got[0])

	got, err = svc.Search(context.Background(), "  ")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestService_SearchSurvivesOneFailingList(t *testing.T) {
	src := newFakeSource()
	src.artistErr = errors.New("artists unavailable")
	svc, _ := newService(src)

	got, err := svc.Search(context.Background(), "work")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, KindPlaylist, got[0].Kind)

	src.err = errors.New("everything down")
	svc2, _ := newService(src)
	_, err = svc2.Search(context.Background(), "work")
	assert.Error(t, err)
}

func TestRank_Ordering(t *testing.T) {
	candidates := []Result{
		{Name: "Deep Focus"},
		{Name: "focus"},
		{Name: "Focus Flow"},
		{Name: "Lo-Fi Beats"},
		{Name: "fxoxcxuxs"},
	}
	got := Rank("Focus", candidates)

	names := make([]string, len(got))
	for i, r := range got {
		names[i] = r.Name
	}
	assert.Equal(t, []string{"focus", "Focus Flow", "Deep Focus", "fxoxcxuxs"}, names)
	assert.Nil(t, Rank("", candidates))
}
