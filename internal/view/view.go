package view

import (
	"net/url"
	"strings"

	"github.com/zmb3/spotify/v2"
)

// Mode is the top level library list.
type Mode string

const (
	ModePlaylists Mode = "playlists"
	ModeArtists   Mode = "artists"
)

// SubView selects what is listed for an artist.
type SubView string

const (
	SubViewTracks SubView = "tracks"
	SubViewAlbums SubView = "albums"
)

// State is the navigation selection mirrored into a query string.
type State struct {
	Mode          Mode
	PlaylistID    spotify.ID
	ArtistID      spotify.ID
	AlbumID       spotify.ID
	ArtistSubView SubView
}

// Normalize drops selections that do not belong to the mode. An album is only
// meaningful under an artist and implies the albums sub view.
func (s State) Normalize() State {
	switch s.Mode {
	case ModeArtists:
		s.PlaylistID = ""
		if s.ArtistID == "" {
			s.AlbumID = ""
			s.ArtistSubView = SubViewTracks
			return s
		}
		if s.AlbumID != "" || s.ArtistSubView == SubViewAlbums {
			s.ArtistSubView = SubViewAlbums
		} else {
			s.ArtistSubView = SubViewTracks
		}
		return s
	default:
		return State{Mode: ModePlaylists, PlaylistID: s.PlaylistID, ArtistSubView: SubViewTracks}
	}
}

// Encode renders s as a query string without the leading '?'. Parameters
// keep a fixed order with view first.
func Encode(s State) string {
	s = s.Normalize()
	params := []string{"view=" + url.QueryEscape(string(s.Mode))}
	add := func(k, v string) {
		params = append(params, k+"="+url.QueryEscape(v))
	}
	switch s.Mode {
	case ModePlaylists:
		if s.PlaylistID != "" {
			add("playlist", string(s.PlaylistID))
		}
	case ModeArtists:
		if s.ArtistID != "" {
			add("artist", string(s.ArtistID))
		}
		if s.AlbumID != "" {
			add("album", string(s.AlbumID))
		} else if s.ArtistSubView == SubViewAlbums {
			add("subview", string(SubViewAlbums))
		}
	}
	return strings.Join(params, "&")
}

// Decode parses a query string, with or without '?'. Anything it cannot make
// sense of yields the zero selection in playlists mode.
func Decode(raw string) State {
	v, err := url.ParseQuery(strings.TrimPrefix(strings.TrimSpace(raw), "?"))
	if err != nil {
		return State{}.Normalize()
	}
	s := State{ArtistSubView: SubViewTracks}
	switch Mode(v.Get("view")) {
	case ModePlaylists:
		s.Mode = ModePlaylists
		s.PlaylistID = spotify.ID(v.Get("playlist"))
	case ModeArtists:
		s.Mode = ModeArtists
		s.ArtistID = spotify.ID(v.Get("artist"))
		s.AlbumID = spotify.ID(v.Get("album"))
		if SubView(v.Get("subview")) == SubViewAlbums {
			s.ArtistSubView = SubViewAlbums
		}
	default:
		s.Mode = ModePlaylists
	}
	return s.Normalize()
}

// ActionKind names a load step needed to restore a view.
type ActionKind int

const (
	LoadPlaylists ActionKind = iota
	LoadPlaylistTracks
	LoadArtists
	LoadArtistTopTracks
	LoadArtistAlbums
	LoadAlbumTracks
)

func (k ActionKind) String() string {
	switch k {
	case LoadPlaylists:
		return "playlists"
	case LoadPlaylistTracks:
		return "playlist-tracks"
	case LoadArtists:
		return "artists"
	case LoadArtistTopTracks:
		return "artist-top-tracks"
	case LoadArtistAlbums:
		return "artist-albums"
	case LoadAlbumTracks:
		return "album-tracks"
	default:
		return "unknown"
	}
}

// Action is a single load step. ID is empty for the top level lists.
type Action struct {
	Kind ActionKind
	ID   spotify.ID
}

// Restore returns the loads, in order, that bring the UI to s.
func Restore(s State) []Action {
	s = s.Normalize()
	if s.Mode == ModePlaylists {
		actions := []Action{{Kind: LoadPlaylists}}
		if s.PlaylistID != "" {
			actions = append(actions, Action{Kind: LoadPlaylistTracks, ID: s.PlaylistID})
		}
		return actions
	}

	actions := []Action{{Kind: LoadArtists}}
	switch {
	case s.ArtistID == "":
	case s.AlbumID != "":
		actions = append(actions, Action{Kind: LoadAlbumTracks, ID: s.AlbumID})
	case s.ArtistSubView == SubViewAlbums:
		actions = append(actions, Action{Kind: LoadArtistAlbums, ID: s.ArtistID})
	default:
		actions = append(actions, Action{Kind: LoadArtistTopTracks, ID: s.ArtistID})
	}
	return actions
}
