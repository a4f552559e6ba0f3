// Package library serves playlists, artists, albums and tracks through the
// TTL cache. Refresh operations clear one cache scope and reload; Search
// ranks playlist and artist names with fuzzy matching.
package library
