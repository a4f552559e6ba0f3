package library

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zmb3/spotify/v2"

	"github.com/five82/deck/internal/cache"
	"github.com/five82/deck/internal/kiosk"
	"github.com/five82/deck/internal/logging"
)

// Source fetches library data from the backend.
type Source interface {
	Playlists(ctx context.Context) ([]kiosk.Playlist, error)
	PlaylistTracks(ctx context.Context, id spotify.ID) ([]kiosk.Track, error)
	Artists(ctx context.Context) ([]kiosk.Artist, error)
	ArtistTopTracks(ctx context.Context, id spotify.ID) ([]kiosk.Track, error)
	ArtistAlbums(ctx context.Context, id spotify.ID) ([]kiosk.Album, error)
	AlbumTracks(ctx context.Context, id spotify.ID) ([]kiosk.Track, error)
}

// Service serves library lists from the cache and falls back to the backend
// on a miss. Successful fetches are written back; failures are not cached.
type Service struct {
	src    Source
	cache  *cache.Cache
	logger *slog.Logger
}

// NewService wires a Source to a cache.
func NewService(src Source, c *cache.Cache, logger *slog.Logger) *Service {
	return &Service{src: src, cache: c, logger: logging.OrDiscard(logger)}
}

// Playlists returns the user's playlists.
func (s *Service) Playlists(ctx context.Context) ([]kiosk.Playlist, error) {
	return load(ctx, s, cache.KeyPlaylists, "playlists", s.src.Playlists)
}

// PlaylistTracks returns a playlist's tracks.
func (s *Service) PlaylistTracks(ctx context.Context, id spotify.ID) ([]kiosk.Track, error) {
	return load(ctx, s, cache.PlaylistTracksKey(string(id)), "playlist tracks", func(ctx context.Context) ([]kiosk.Track, error) {
		return s.src.PlaylistTracks(ctx, id)
	})
}

// Artists returns the followed artists.
func (s *Service) Artists(ctx context.Context) ([]kiosk.Artist, error) {
	return load(ctx, s, cache.KeyArtists, "artists", s.src.Artists)
}

// ArtistTopTracks returns an artist's top tracks.
func (s *Service) ArtistTopTracks(ctx context.Context, id spotify.ID) ([]kiosk.Track, error) {
	return load(ctx, s, cache.ArtistTracksKey(string(id)), "artist tracks", func(ctx context.Context) ([]kiosk.Track, error) {
		return s.src.ArtistTopTracks(ctx, id)
	})
}

// ArtistAlbums returns an artist's albums.
func (s *Service) ArtistAlbums(ctx context.Context, id spotify.ID) ([]kiosk.Album, error) {
	return load(ctx, s, cache.ArtistAlbumsKey(string(id)), "artist albums", func(ctx context.Context) ([]kiosk.Album, error) {
		return s.src.ArtistAlbums(ctx, id)
	})
}

// AlbumTracks returns an album's tracks.
func (s *Service) AlbumTracks(ctx context.Context, id spotify.ID) ([]kiosk.Track, error) {
	return load(ctx, s, cache.AlbumTracksKey(string(id)), "album tracks", func(ctx context.Context) ([]kiosk.Track, error) {
		return s.src.AlbumTracks(ctx, id)
	})
}

// RefreshPlaylists drops cached playlists and playlist tracks, then reloads
// the playlist list.
func (s *Service) RefreshPlaylists(ctx context.Context) ([]kiosk.Playlist, error) {
	n := s.cache.ClearPrefix(cache.PlaylistScope...)
	s.logger.Info("playlist cache cleared", "entries", n)
	return s.Playlists(ctx)
}

// RefreshArtists drops cached artists, top tracks, albums and album tracks,
// then reloads the artist list.
func (s *Service) RefreshArtists(ctx context.Context) ([]kiosk.Artist, error) {
	n := s.cache.ClearPrefix(cache.ArtistScope...)
	s.logger.Info("artist cache cleared", "entries", n)
	return s.Artists(ctx)
}

func load[T any](ctx context.Context, s *Service, key, what string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	var cached []T
	if s.cache.Get(key, &cached) {
		s.logger.Debug("cache hit", "key", key)
		return cached, nil
	}
	items, err := fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", what, err)
	}
	if items == nil {
		items = []T{}
	}
	s.cache.Set(key, items)
	return items, nil
}
