package domain

import "net/url"

// Location is the navigable address a search is mirrored into, the
// terminal analogue of the browser address bar. The path is always "/";
// only the query parameters `q`, `kind` and `seasons` vary.
type Location struct {
	Query   string
	Kind    QueryKind
	Seasons []Season
}

// Values encodes the location's query parameters. `q` and `kind` are
// always present. `seasons` is included only when the selection is a
// strict, non-empty subset of the catalogue: a selection covering every
// season (compared order-independently) encodes the same as no
// selection at all, so default addresses stay canonical.
func (l Location) Values() url.Values {
	kind := l.Kind
	if kind == "" {
		kind = QueryKindPhrase
	}

	v := url.Values{}
	v.Set("q", l.Query)
	v.Set("kind", string(kind))
	if len(l.Seasons) > 0 && !SeasonsEqualCatalogue(l.Seasons) {
		v.Set("seasons", joinSeasons(l.Seasons))
	}
	return v
}

// String renders the location as a relative URL.
func (l Location) String() string {
	u := url.URL{Path: "/", RawQuery: l.Values().Encode()}
	return u.String()
}

// Merge applies the parameters present in values on top of the
// location. Parameters absent from values keep their current value, so
// a partial address (say, just `q`) does not reset the kind or season
// filter.
func (l Location) Merge(values url.Values) Location {
	if values.Has("q") {
		l.Query = values.Get("q")
	}
	if values.Has("kind") {
		if kind, err := ParseQueryKind(values.Get("kind")); err == nil {
			l.Kind = kind
		}
	}
	if values.Has("seasons") {
		l.Seasons = splitSeasons(values.Get("seasons"))
	}
	return l
}

// LocationFromValues decodes a full set of parameters, applying the
// phrase/empty defaults for anything missing.
func LocationFromValues(values url.Values) Location {
	return Location{Kind: QueryKindPhrase}.Merge(values)
}

// SearchQuery returns the search query this location describes. The
// highlight flag is always requested; see SearchQuery.Highlight.
func (l Location) SearchQuery() SearchQuery {
	kind := l.Kind
	if kind == "" {
		kind = QueryKindPhrase
	}
	return SearchQuery{
		Text:      l.Query,
		Kind:      kind,
		Seasons:   append([]Season(nil), l.Seasons...),
		Highlight: true,
	}
}
