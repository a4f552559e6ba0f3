package library

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/zmb3/spotify/v2"
)

// Kind tells playlists and artists apart in search results.
type Kind string

const (
	KindPlaylist Kind = "playlist"
	KindArtist   Kind = "artist"
)

// Result is one search hit.
type Result struct {
	Kind  Kind
	ID    spotify.ID
	Name  string
	Score int // lower is better
}

// Search ranks playlists and artists whose names fuzzily contain query. A
// failure of one list still returns hits from the other.
func (s *Service) Search(ctx context.Context, query string) ([]Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	var candidates []Result
	playlists, perr := s.Playlists(ctx)
	for _, p := range playlists {
		candidates = append(candidates, Result{Kind: KindPlaylist, ID: p.ID, Name: p.Name})
	}
	artists, aerr := s.Artists(ctx)
	for _, a := range artists {
		candidates = append(candidates, Result{Kind: KindArtist, ID: a.ID, Name: a.Name})
	}
	if perr != nil && aerr != nil {
		return nil, errors.Join(perr, aerr)
	}

	results := Rank(query, candidates)
	s.logger.Debug("search complete", "query", query, "results", len(results))
	return results, nil
}

// Rank filters candidates to fuzzy matches of query and orders them: exact,
// prefix, substring, then by edit distance. Ties sort by name.
func Rank(query string, candidates []Result) []Result {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Name
	}
	matches := fuzzy.RankFindFold(q, names)

	out := make([]Result, 0, len(matches))
	for _, m := range matches {
		r := candidates[m.OriginalIndex]
		r.Score = matchScore(strings.ToLower(r.Name), q, m.Distance)
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score < out[j].Score
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func matchScore(name, query string, distance int) int {
	switch {
	case name == query:
		return 0
	case strings.HasPrefix(name, query):
		return 10
	case strings.Contains(name, query):
		return 50
	default:
		return 100 + distance
	}
}
