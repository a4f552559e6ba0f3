package kiosk

import (
	"strings"

	"github.com/zmb3/spotify/v2"
)

// Playlist is an entry of /api/playlists.
type Playlist struct {
	ID          spotify.ID `json:"id"`
	Name        string     `json:"name"`
	Image       string     `json:"image,omitempty"`
	TracksTotal int        `json:"tracks_total"`
}

// Artist is an entry of /api/artists.
type Artist struct {
	ID    spotify.ID `json:"id"`
	Name  string     `json:"name"`
	Image string     `json:"image,omitempty"`
}

// Album is an entry of /api/artist/:id/albums.
type Album struct {
	ID          spotify.ID  `json:"id"`
	URI         spotify.URI `json:"uri"`
	Name        string      `json:"name"`
	Image       string      `json:"image,omitempty"`
	ReleaseDate string      `json:"release_date,omitempty"`
	TotalTracks int         `json:"total_tracks"`
}

// Year returns the release year, or "" when unknown.
func (a Album) Year() string {
	if len(a.ReleaseDate) >= 4 {
		return a.ReleaseDate[:4]
	}
	return ""
}

// Track is returned by playlist, top-track and album-track listings. The
// album fields are only filled for album tracks.
type Track struct {
	ID          spotify.ID  `json:"id"`
	URI         spotify.URI `json:"uri"`
	Name        string      `json:"name"`
	Artist      string      `json:"artist"`
	Album       string      `json:"album,omitempty"`
	DurationMS  int64       `json:"duration_ms"`
	Image       string      `json:"image,omitempty"`
	AlbumURI    spotify.URI `json:"album_uri,omitempty"`
	TrackNumber int         `json:"track_number,omitempty"`
	ReleaseDate string      `json:"release_date,omitempty"`
}

// CurrentPlayback is the /api/current payload. Track is nil when nothing plays.
type CurrentPlayback struct {
	Playing       bool          `json:"playing"`
	Shuffle       bool          `json:"shuffle"`
	VolumePercent int           `json:"volume_percent"`
	Track         *CurrentTrack `json:"track,omitempty"`
}

// CurrentTrack describes the track in /api/current.
type CurrentTrack struct {
	ID         spotify.ID `json:"id"`
	Name       string     `json:"name"`
	Artist     string     `json:"artist"`
	Album      string     `json:"album"`
	Image      string     `json:"image,omitempty"`
	DurationMS int64      `json:"duration_ms"`
	ProgressMS int64      `json:"progress_ms"`
}

// PlayTrackRequest is the body of POST /api/play-track. Exactly one of
// PlaylistID or AlbumID sets the playback context; TrackURIs is used for
// artist top tracks, which have no context.
type PlayTrackRequest struct {
	URI        spotify.URI   `json:"uri"`
	PlaylistID spotify.ID    `json:"playlist_id,omitempty"`
	AlbumID    spotify.ID    `json:"album_id,omitempty"`
	TrackURIs  []spotify.URI `json:"track_uris,omitempty"`
}

// ConnectDevice is a Spotify Connect device known to the Web API.
type ConnectDevice struct {
	ID            spotify.ID `json:"id"`
	Name          string     `json:"name"`
	Type          string     `json:"type"`
	IsActive      bool       `json:"is_active"`
	VolumePercent int        `json:"volume_percent"`
}

// LocalDevice is a Spotify Connect device discovered over mDNS.
type LocalDevice struct {
	Name       string `json:"name"`
	IP         string `json:"ip"`
	Port       int    `json:"port"`
	Type       string `json:"type"`
	IsActive   bool   `json:"is_active"`
	DeviceID   string `json:"device_id,omitempty"`
	RemoteName string `json:"remote_name,omitempty"`
	DeviceType string `json:"device_type,omitempty"`
	Brand      string `json:"brand,omitempty"`
	Model      string `json:"model,omitempty"`
}

// DisplayName prefers the ZeroConf remote name over the mDNS name.
func (d LocalDevice) DisplayName() string {
	if name := strings.TrimSpace(d.RemoteName); name != "" {
		return name
	}
	return d.Name
}

// Description joins brand, model and device type for display.
func (d LocalDevice) Description() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{d.Brand, d.Model, d.DeviceType} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "Local network"
	}
	return strings.Join(parts, " · ")
}

// ActivateResult is returned by POST /api/devices/local/activate.
type ActivateResult struct {
	Success           bool   `json:"success"`
	Message           string `json:"message,omitempty"`
	SpotifyDeviceID   string `json:"spotify_device_id,omitempty"`
	SkippedActivation bool   `json:"skipped_activation,omitempty"`
}

// AudioDevice is a system audio output.
type AudioDevice struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsActive  bool   `json:"is_active"`
	IsDefault bool   `json:"is_default"`
}

// Selected reports whether the device is the current output.
func (d AudioDevice) Selected() bool {
	return d.IsActive || d.IsDefault
}

// BluetoothDevice is a paired or discovered Bluetooth device.
type BluetoothDevice struct {
	Address   string `json:"address"`
	Name      string `json:"name"`
	Icon      string `json:"icon,omitempty"`
	Codec     string `json:"codec,omitempty"`
	Connected bool   `json:"connected"`
	Paired    bool   `json:"paired"`
}

// BluetoothDevices is the /api/bluetooth/devices payload.
type BluetoothDevices struct {
	Paired     []BluetoothDevice `json:"paired"`
	Discovered []BluetoothDevice `json:"discovered"`
	Scanning   bool              `json:"scanning"`
}

// PairResult is the body of POST /api/bluetooth/pair. A 202 response with
// NeedsPIN asks the caller to retry with a PIN.
type PairResult struct {
	Success  bool   `json:"success"`
	NeedsPIN bool   `json:"needs_pin"`
	Message  string `json:"message,omitempty"`
}

// VolumeSettings is the /api/settings/volume payload.
type VolumeSettings struct {
	DefaultVolume int `json:"default_volume"`
	MaxVolume     int `json:"max_volume"`
}

// NetworkStatus is the /api/system/network-status payload.
type NetworkStatus struct {
	IP       string `json:"ip"`
	Internet bool   `json:"internet"`
}

// PowerSaving is the /api/system/power-saving payload.
type PowerSaving struct {
	Enabled        bool `json:"enabled"`
	RebootRequired bool `json:"reboot_required,omitempty"`
}

// DeviceInfo is the /api/system/device-info payload.
type DeviceInfo struct {
	Hostname   string `json:"hostname"`
	PlayerName string `json:"player_name"`
}

// UpdateInfo is the /api/system/check-update payload.
type UpdateInfo struct {
	Available      bool   `json:"available"`
	CurrentVersion string `json:"current_version"`
	LatestVersion  string `json:"latest_version"`
	ReleaseNotes   string `json:"release_notes,omitempty"`
	Error          string `json:"error,omitempty"`
}

// AccountInfo is the /api/account/info payload.
type AccountInfo struct {
	DisplayName  string `json:"display_name"`
	Email        string `json:"email"`
	Product      string `json:"product"`
	AvatarURL    string `json:"avatar_url,omitempty"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}
