// Package kiosk is the HTTP client for the kiosk backend REST API.
//
// The backend owns the Spotify session, the audio stack, Bluetooth and the
// system calls; this package only speaks its JSON endpoints:
//
//   - library: /api/playlists, /api/playlist/:id, /api/artists,
//     /api/artist/:id/top-tracks, /api/artist/:id/albums, /api/album/:id/tracks
//   - playback: /api/current, /api/play, /api/pause, /api/next,
//     /api/previous, /api/play-track, /api/shuffle, /api/seek, /api/volume
//   - devices: /api/devices, /api/spotify-connect/local,
//     /api/transfer-playback(-local), /api/devices/local/activate,
//     /api/audio/devices, /api/audio/output, /api/audio/volume,
//     /api/settings/volume
//   - bluetooth: /api/bluetooth/{devices,scan,pair,connect,disconnect,forget,power}
//   - system and account: /api/verify-pin, /api/system/*, /api/account/info,
//     /api/settings/credentials
//
// # Errors
//
// Any response with status >= 400 becomes an *APIError carrying the status,
// the backend's error message and its error_type / needs_pin /
// needs_activation flags. Endpoints that report failure in-band (HTTP 200
// with an error field or success=false) are converted to an *APIError with
// Status 200. IsForbidden, NeedsActivation, StatusCode and Message inspect
// wrapped errors with errors.As.
//
// The client never retries. Every request carries the caller's context and
// a 10 second client timeout.
package kiosk
