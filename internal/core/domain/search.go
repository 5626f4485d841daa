package domain

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// QueryKind selects how the service interprets the query text.
type QueryKind string

const (
	// QueryKindPhrase matches the query as a literal phrase.
	QueryKindPhrase QueryKind = "phrase"

	// QueryKindAdvanced passes the query to the server-side operator
	// syntax, opaque to the client.
	QueryKindAdvanced QueryKind = "advanced"
)

// ParseQueryKind validates a wire-form kind. The empty string maps to
// the phrase default.
func ParseQueryKind(s string) (QueryKind, error) {
	switch QueryKind(s) {
	case "":
		return QueryKindPhrase, nil
	case QueryKindPhrase:
		return QueryKindPhrase, nil
	case QueryKindAdvanced:
		return QueryKindAdvanced, nil
	}
	return "", fmt.Errorf("%w: unknown query kind %q", ErrInvalidInput, s)
}

// SearchQuery is the canonical in-memory search request. An empty
// Seasons slice means no explicit selection, i.e. all seasons.
type SearchQuery struct {
	// Text is the free-text query.
	Text string

	// Kind selects phrase or advanced interpretation.
	Kind QueryKind

	// Seasons filters results to the given story arcs.
	Seasons []Season

	// Highlight requests highlighted excerpts.
	Highlight bool

	// Page is the opaque continuation token, set only on
	// continuation requests.
	Page string

	// PageSize overrides the server's default page size when > 0.
	PageSize int
}

// Values serialises the query into the service's request parameters.
// Seasons are comma-joined, with an empty string when nothing is
// selected. Page is included only when present.
func (q SearchQuery) Values() url.Values {
	kind := q.Kind
	if kind == "" {
		kind = QueryKindPhrase
	}

	v := url.Values{}
	v.Set("query", q.Text)
	v.Set("kind", string(kind))
	v.Set("seasons", joinSeasons(q.Seasons))
	v.Set("highlight", strconv.FormatBool(q.Highlight))
	if q.Page != "" {
		v.Set("page", q.Page)
	}
	if q.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(q.PageSize))
	}
	return v
}

// Continuation returns a copy of the query with the given page token
// set, for requesting the next result page.
func (q SearchQuery) Continuation(page string) SearchQuery {
	q.Page = page
	return q
}

// Location returns the navigable address for this query. Continuation
// state is deliberately not part of the address.
func (q SearchQuery) Location() Location {
	return Location{
		Query:   q.Text,
		Kind:    q.Kind,
		Seasons: append([]Season(nil), q.Seasons...),
	}
}

func joinSeasons(seasons []Season) string {
	slugs := make([]string, len(seasons))
	for i, s := range seasons {
		slugs[i] = string(s)
	}
	return strings.Join(slugs, ",")
}

func splitSeasons(raw string) []Season {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	seasons := make([]Season, 0, len(parts))
	for _, p := range parts {
		seasons = append(seasons, Season(p))
	}
	return seasons
}
