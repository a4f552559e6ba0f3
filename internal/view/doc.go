// Package view models library navigation as a small value type that
// round-trips through a URL query string.
//
// The encoded form is the same one the kiosk web page keeps in its address
// bar (view, playlist, artist, album, subview), so a saved view can be
// restored in the terminal and vice versa. Restore turns a State into the
// ordered list of loads needed to show it.
package view
