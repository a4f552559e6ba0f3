package ui

import (
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/zmb3/spotify/v2"
)

// row is one line of a browser pane.
type row struct {
	id    spotify.ID
	uri   spotify.URI
	title string
	sub   string
	right string
	// index into the source slice the row was built from
	index int
}

// rowSource implements fuzzy.Source over lowercased row titles and
// subtitles.
type rowSource struct {
	rows  []row
	lower []string
}

func newRowSource(rows []row) rowSource {
	lower := make([]string, len(rows))
	for i, r := range rows {
		lower[i] = strings.ToLower(r.title + " " + r.sub)
	}
	return rowSource{rows: rows, lower: lower}
}

func (s rowSource) String(i int) string { return s.lower[i] }

func (s rowSource) Len() int { return len(s.rows) }

// filterRows keeps rows matching query in fuzzy rank order. An empty query
// returns rows unchanged.
func filterRows(rows []row, query string) []row {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return rows
	}
	matches := fuzzy.FindFrom(query, newRowSource(rows))
	out := make([]row, len(matches))
	for i, match := range matches {
		out[i] = rows[match.Index]
	}
	return out
}
