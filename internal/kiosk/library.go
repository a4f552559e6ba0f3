package kiosk

import (
	"context"
	"net/url"

	"github.com/zmb3/spotify/v2"
)

// Playlists lists the user's playlists.
func (c *Client) Playlists(ctx context.Context) ([]Playlist, error) {
	var payload []Playlist
	if err := c.get(ctx, "/api/playlists", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// PlaylistTracks lists the tracks of a playlist.
func (c *Client) PlaylistTracks(ctx context.Context, id spotify.ID) ([]Track, error) {
	var payload []Track
	if err := c.get(ctx, "/api/playlist/"+escapeID(id), &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Artists lists the user's followed artists.
func (c *Client) Artists(ctx context.Context) ([]Artist, error) {
	var payload []Artist
	if err := c.get(ctx, "/api/artists", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// ArtistTopTracks lists an artist's top tracks.
func (c *Client) ArtistTopTracks(ctx context.Context, id spotify.ID) ([]Track, error) {
	var payload []Track
	if err := c.get(ctx, "/api/artist/"+escapeID(id)+"/top-tracks", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// ArtistAlbums lists an artist's albums.
func (c *Client) ArtistAlbums(ctx context.Context, id spotify.ID) ([]Album, error) {
	var payload []Album
	if err := c.get(ctx, "/api/artist/"+escapeID(id)+"/albums", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// AlbumTracks lists the tracks of an album.
func (c *Client) AlbumTracks(ctx context.Context, id spotify.ID) ([]Track, error) {
	var payload []Track
	if err := c.get(ctx, "/api/album/"+escapeID(id)+"/tracks", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func escapeID(id spotify.ID) string {
	return url.PathEscape(string(id))
}
