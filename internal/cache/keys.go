package cache

import "strings"

// Cache keys and prefixes for library data.
const (
	KeyPlaylists = "spotify-playlists-cache"
	KeyArtists   = "spotify-artists-cache"

	PrefixPlaylistTracks = "spotify-tracks-"
	PrefixArtistTracks   = "spotify-artist-tracks-"
	PrefixArtistAlbums   = "spotify-artist-albums-"
	PrefixAlbumTracks    = "spotify-album-tracks-"
)

// PlaylistTracksKey is the key for a playlist's tracks.
func PlaylistTracksKey(id string) string { return PrefixPlaylistTracks + id }

// ArtistTracksKey is the key for an artist's top tracks.
func ArtistTracksKey(id string) string { return PrefixArtistTracks + id }

// ArtistAlbumsKey is the key for an artist's albums.
func ArtistAlbumsKey(id string) string { return PrefixArtistAlbums + id }

// AlbumTracksKey is the key for an album's tracks.
func AlbumTracksKey(id string) string { return PrefixAlbumTracks + id }

// PlaylistScope lists what a playlist refresh clears.
var PlaylistScope = []string{KeyPlaylists, PrefixPlaylistTracks}

// ArtistScope lists what an artist refresh clears.
var ArtistScope = []string{KeyArtists, PrefixArtistTracks, PrefixArtistAlbums, PrefixAlbumTracks}

// Scope resolves a user-facing scope name to prefixes. ok is false for
// unknown names. "all" clears every key.
func Scope(name string) (prefixes []string, ok bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "playlists":
		return PlaylistScope, true
	case "artists":
		return ArtistScope, true
	case "", "all":
		return []string{""}, true
	default:
		return nil, false
	}
}
