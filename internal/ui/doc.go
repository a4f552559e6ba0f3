// Package ui provides the deck terminal interface built on Bubble Tea.
//
// # Architecture Overview
//
// Model is a value-receiver tea.Model. All backend calls run inside tea.Cmd
// functions and report back as messages, so Update never blocks. Now-playing
// state is polled by app.Poller into a state.Store; the UI reads the store on
// its progress tick and interpolates the position between polls.
//
// # Package Structure
//
//   - ui.go: Model, Options, message dispatch and Run
//   - browser.go: playlist and artist panes, navigation and track playback
//   - playback.go: transport keys with optimistic updates
//   - settings.go: settings overlay, tab switching, PIN gate and tab pollers
//   - settings_tabs.go: the rows each settings tab shows
//   - settings_actions.go: backend commands behind the settings rows
//   - logs.go: log overlay over deck's own log file
//   - modal.go: confirm, prompt, message and PIN keypad dialogs
//   - header.go, help.go, toast.go: chrome around the active view
//   - theme.go, keys.go, layout.go, helpers.go: styling and shared constants
//
// # Staleness
//
// Every asynchronous result carries enough context to be dropped when it
// arrives late: library loads carry their view.Action, tab polls a sequence
// number that changes when the tab does, and toasts an id so an old expiry
// cannot clear a newer message.
//
// # Keyboard Shortcuts
//
//   - space: play/pause, n/p: next/previous, s: shuffle
//   - left/right: seek 10s, +/-: Spotify volume
//   - v: playlists/artists, a: albums/top tracks, tab: switch pane
//   - /: filter, r: refresh library, backspace: back
//   - ,: settings, L: language, o: logs, ?: help, q: quit
package ui
