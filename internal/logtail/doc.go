// Package logtail reads and formats the tail of deck's own log file.
//
// Read uses a ring buffer so only the last maxLines are kept in memory while
// the file is scanned once. Parse decodes the slog JSON records written by
// the logging package, and Entry.String / Entry.Colorize turn them into a
// compact single-line form for `deck logs`.
//
// Read returns nil, nil for a missing file. Lines that are not JSON are kept
// verbatim rather than dropped.
package logtail
