// Package cli defines the deck command tree.
//
// The root command opens the TUI. Subcommands reuse the same services
// (backend client, library cache, log file) for one-shot actions: playback
// control, library listings, devices, cache maintenance, kiosk system and
// account management, log tailing and the MCP server.
//
// Settings resolve in three layers: the TOML config file, DECK_* environment
// variables (optionally from a .env file) and flags. Later layers win.
package cli
