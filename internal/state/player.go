package state

import (
	"time"

	"github.com/zmb3/spotify/v2"

	"github.com/five82/deck/internal/kiosk"
)

// Player is the locally interpolated playback state. Progress is kept in
// [0, Duration] by every method.
type Player struct {
	Playing            bool
	Shuffle            bool
	Volume             int
	TrackID            spotify.ID
	Title              string
	Artist             string
	Album              string
	Duration           time.Duration
	Progress           time.Duration
	LastProgressUpdate time.Time
}

// HasTrack reports whether a track is loaded.
func (p Player) HasTrack() bool {
	return p.TrackID != "" || p.Title != ""
}

// Sync reconciles the player with a /api/current payload. A nil payload or a
// payload without a track resets the track fields.
func (p *Player) Sync(now time.Time, cur *kiosk.CurrentPlayback) {
	if cur == nil {
		*p = Player{LastProgressUpdate: now}
		return
	}
	p.Playing = cur.Playing
	p.Shuffle = cur.Shuffle
	p.Volume = cur.VolumePercent
	p.LastProgressUpdate = now

	if cur.Track == nil {
		p.TrackID, p.Title, p.Artist, p.Album = "", "", "", ""
		p.Duration, p.Progress = 0, 0
		return
	}
	t := cur.Track
	p.TrackID = t.ID
	p.Title = t.Name
	p.Artist = t.Artist
	p.Album = t.Album
	p.Duration = msDuration(t.DurationMS)
	p.Progress = p.clamp(msDuration(t.ProgressMS))
}

// Advance moves progress forward by the wall-clock time since the last
// update while playing.
func (p *Player) Advance(now time.Time) {
	if !p.Playing || p.Duration <= 0 {
		p.LastProgressUpdate = now
		return
	}
	elapsed := now.Sub(p.LastProgressUpdate)
	if elapsed < 0 {
		elapsed = 0
	}
	p.Progress = p.clamp(p.Progress + elapsed)
	p.LastProgressUpdate = now
}

// Seek sets progress to pos, clamped to the track.
func (p *Player) Seek(now time.Time, pos time.Duration) {
	p.Progress = p.clamp(pos)
	p.LastProgressUpdate = now
}

// Fraction returns progress as a value in [0, 1].
func (p Player) Fraction() float64 {
	if p.Duration <= 0 {
		return 0
	}
	return float64(p.Progress) / float64(p.Duration)
}

func (p Player) clamp(d time.Duration) time.Duration {
	if d < 0 || p.Duration <= 0 {
		return 0
	}
	if d > p.Duration {
		return p.Duration
	}
	return d
}

func msDuration(ms int64) time.Duration {
	if ms < 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}
