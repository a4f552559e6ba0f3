package cache

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/deck/internal/config"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) Now() time.Time          { return f.t }
func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
}

type playlist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// stores returns one of each backend so behaviour is checked uniformly.
func stores(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	bs, err := OpenBolt(filepath.Join(dir, "library.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = bs.Close() })

	ss, err := OpenSQLite(filepath.Join(dir, "library.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = ss.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"bolt":   bs,
		"sqlite": ss,
	}
}

func TestCache_GetSetRoundTrip(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			clock := newClock()
			c := New(store, WithClock(clock.Now))

			want := []playlist{{ID: "p1", Name: "Morning"}}
			c.Set(KeyPlaylists, want)

			var got []playlist
			require.True(t, c.Get(KeyPlaylists, &got))
			assert.Equal(t, want, got)

			var missing []playlist
			assert.False(t, c.Get(KeyArtists, &missing))
		})
	}
}

func TestCache_ExpiredEntriesAreNeverReturned(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			clock := newClock()
			c := New(store, WithClock(clock.Now), WithTTL(time.Hour))

			c.Set("k", "v")

			clock.Advance(time.Hour)
			var v string
			assert.True(t, c.Get("k", &v), "entry exactly at TTL is still fresh")

			clock.Advance(time.Millisecond)
			assert.False(t, c.Get("k", &v), "entry older than TTL must miss")

			_, ok, err := store.Get("k")
			require.NoError(t, err)
			assert.False(t, ok, "expired entry should be removed on read")
		})
	}
}

func TestCache_CorruptEntryIsMiss(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Put("bad", []byte("{not json")))
	require.NoError(t, store.Put("empty", []byte(`{"key":"empty","timestamp":1}`)))

	c := New(store)
	var v any
	assert.False(t, c.Get("bad", &v))
	assert.False(t, c.Get("empty", &v))

	_, ok, _ := store.Get("bad")
	assert.False(t, ok)
}

func TestCache_TypeMismatchIsMiss(t *testing.T) {
	c := New(NewMemoryStore())
	c.Set("k", "a string")

	var n int
	assert.False(t, c.Get("k", &n))
}

type failingStore struct{ MemoryStore }

func (f *failingStore) Put(string, []byte) error { return errors.New("quota exceeded") }
func (f *failingStore) Get(string) ([]byte, bool, error) {
	return nil, false, errors.New("disk gone")
}

func TestCache_SwallowsStoreErrors(t *testing.T) {
	c := New(&failingStore{MemoryStore: *NewMemoryStore()})

	assert.NotPanics(t, func() { c.Set("k", []int{1, 2}) })
	var v []int
	assert.False(t, c.Get("k", &v))
}

func TestCache_ClearScopes(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			c := New(store)
			c.Set(KeyPlaylists, 1)
			c.Set(PlaylistTracksKey("p1"), 1)
			c.Set(PlaylistTracksKey("p2"), 1)
			c.Set(KeyArtists, 1)
			c.Set(ArtistTracksKey("a1"), 1)
			c.Set(ArtistAlbumsKey("a1"), 1)
			c.Set(AlbumTracksKey("al1"), 1)

			assert.Equal(t, 3, c.ClearPrefix(PlaylistScope...))

			var v int
			assert.False(t, c.Get(KeyPlaylists, &v))
			assert.False(t, c.Get(PlaylistTracksKey("p1"), &v))
			assert.True(t, c.Get(ArtistTracksKey("a1"), &v), "artist data survives playlist refresh")

			assert.Equal(t, 4, c.ClearPrefix(ArtistScope...))
			st, err := c.Status()
			require.NoError(t, err)
			assert.Zero(t, st.Entries)
		})
	}
}

func TestCache_ClearPrefixEscapesLikeWildcards(t *testing.T) {
	ss, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ss.Close() })

	c := New(ss)
	c.Set("a_b", 1)
	c.Set("axb", 1)

	assert.Equal(t, 1, c.ClearPrefix("a_"))
	var v int
	assert.True(t, c.Get("axb", &v))
}

func TestCache_Status(t *testing.T) {
	clock := newClock()
	store := NewMemoryStore()
	c := New(store, WithClock(clock.Now), WithTTL(time.Hour), WithDescription("memory", ""))

	c.Set("old", 1)
	clock.Advance(2 * time.Hour)
	c.Set("new", 2)
	require.NoError(t, store.Put("junk", []byte("x")))

	st, err := c.Status()
	require.NoError(t, err)
	assert.Equal(t, "memory", st.Backend)
	assert.Equal(t, 3, st.Entries)
	assert.Equal(t, 1, st.Expired)
	assert.Equal(t, 1, st.Corrupt)
	assert.Equal(t, time.Hour, st.TTL)
	assert.True(t, st.Oldest.Before(st.Newest))
	assert.Positive(t, st.Bytes)
}

func TestScope(t *testing.T) {
	p, ok := Scope("Playlists")
	require.True(t, ok)
	assert.Equal(t, PlaylistScope, p)

	p, ok = Scope("all")
	require.True(t, ok)
	assert.Equal(t, []string{""}, p)

	_, ok = Scope("bogus")
	assert.False(t, ok)
}

func TestOpen_Backends(t *testing.T) {
	dir := t.TempDir()

	c, err := Open(config.CacheConfig{Backend: config.CacheMemory, TTL: time.Minute}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, c.TTL())
	require.NoError(t, c.Close())

	c, err = Open(config.CacheConfig{Backend: config.CacheBolt, Path: filepath.Join(dir, "x.db")}, nil, nil)
	require.NoError(t, err)
	st, err := c.Status()
	require.NoError(t, err)
	assert.Equal(t, "bolt", st.Backend)
	assert.Equal(t, DefaultTTL, st.TTL)
	require.NoError(t, c.Close())

	c, err = Open(config.CacheConfig{Backend: config.CacheSQLite, Path: filepath.Join(dir, "x.sqlite")}, nil, nil)
	require.NoError(t, err)
	require.NoError(t, c.Close())

	_, err = Open(config.CacheConfig{Backend: "redis"}, nil, nil)
	assert.Error(t, err)
}
