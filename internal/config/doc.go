// Package config loads the deck client configuration.
//
// # Overview
//
// deck reads a TOML file (default ~/.config/deck/config.toml) that names the
// kiosk backend, the library cache, the log file and the poll cadences. A
// missing file is not an error: Load returns Default() so deck works out of
// the box against a backend on 127.0.0.1:5000.
//
// # TOML Format
//
//	backend = "kiosk.local:5000"
//	language = "nl"
//
//	[cache]
//	backend = "bolt"          # bolt, sqlite or memory
//	path = "~/.cache/deck/library.db"
//	ttl = "24h"
//
//	[log]
//	file = "~/.local/state/deck/deck.log"
//	level = "info"
//
//	[poll]
//	now_playing = "5s"
//	progress = "1s"
//	devices = "3s"
//	bluetooth = "3s"
//	bluetooth_scan = "2s"
//
// Every field is optional. Empty values keep their defaults and paths get
// tilde expansion. Durations use time.ParseDuration syntax and must be
// positive.
//
// # Error Handling
//
// Load returns errors for unreadable files, invalid TOML, unknown cache
// backends and malformed durations. Flag and environment overrides are
// applied by the CLI layer on top of the returned Config.
package config
