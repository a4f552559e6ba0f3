package view

import "github.com/zmb3/spotify/v2"

// WithMode switches the top level list. Switching to the current mode keeps
// the selection.
func (s State) WithMode(m Mode) State {
	if s.Normalize().Mode == m {
		return s.Normalize()
	}
	return State{Mode: m}.Normalize()
}

// SelectPlaylist opens a playlist.
func (s State) SelectPlaylist(id spotify.ID) State {
	return State{Mode: ModePlaylists, PlaylistID: id}.Normalize()
}

// SelectArtist opens an artist's top tracks.
func (s State) SelectArtist(id spotify.ID) State {
	return State{Mode: ModeArtists, ArtistID: id, ArtistSubView: SubViewTracks}.Normalize()
}

// WithSubView toggles between an artist's top tracks and albums.
func (s State) WithSubView(sv SubView) State {
	s = s.Normalize()
	if s.Mode != ModeArtists {
		return s
	}
	s.AlbumID = ""
	s.ArtistSubView = sv
	return s.Normalize()
}

// SelectAlbum opens an album of the selected artist.
func (s State) SelectAlbum(id spotify.ID) State {
	s = s.Normalize()
	if s.Mode != ModeArtists || s.ArtistID == "" {
		return s
	}
	s.AlbumID = id
	return s.Normalize()
}

// Back leaves the innermost selection: album to albums, artist or playlist to
// the bare list.
func (s State) Back() State {
	s = s.Normalize()
	switch {
	case s.AlbumID != "":
		s.AlbumID = ""
		return s.Normalize()
	case s.Mode == ModeArtists:
		return State{Mode: ModeArtists}.Normalize()
	default:
		return State{Mode: ModePlaylists}.Normalize()
	}
}
