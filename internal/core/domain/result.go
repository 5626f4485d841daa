package domain

// HighlightSpan is one run of text within an excerpt, marked as a
// search match or as surrounding context.
type HighlightSpan struct {
	Highlighted bool   `json:"highlighted"`
	Text        string `json:"text"`
}

// HighlightGroup is one contiguous transcript excerpt, split into
// matched and unmatched spans around a search hit.
type HighlightGroup []HighlightSpan

// EpisodeResult is a single episode hit as returned by the service.
type EpisodeResult struct {
	// ID is the service's numeric episode identifier.
	ID uint32 `json:"curiosity_id"`

	// Slug is the URL-safe episode name.
	Slug string `json:"slug"`

	// Title is the episode display title.
	Title string `json:"title"`

	// DocsID references the external transcript document, when one
	// exists.
	DocsID string `json:"docs_id,omitempty"`

	// Season is the slug of the story arc the episode belongs to.
	Season Season `json:"season"`

	// Highlights holds the excerpt groups for this episode, in
	// transcript order.
	Highlights []HighlightGroup `json:"highlights"`
}

// SearchResponse is the decoded body of a successful search call.
// Bodies are taken structurally as-is; the client does not validate
// them beyond JSON decoding.
type SearchResponse struct {
	// QueryTime is the server-side query duration in milliseconds.
	QueryTime int64 `json:"query_time"`

	// NextPage is the continuation token for the following page, or
	// nil when no further pages exist.
	NextPage *string `json:"next_page"`

	// Episodes holds the result page in relevance order.
	Episodes []EpisodeResult `json:"episodes"`
}

// ResultSet aggregates result pages into the display model. Episodes
// only grow through Append; a fresh search replaces the set wholesale.
type ResultSet struct {
	// Episodes is the ordered, append-only result sequence.
	Episodes []EpisodeResult `json:"episodes"`

	// QueryTime is the most recent page's query duration in
	// milliseconds.
	QueryTime int64 `json:"query_time"`

	// NextPage is the current continuation token, nil when the last
	// page has been reached.
	NextPage *string `json:"next_page"`

	// Err is the most recent request failure, empty when the last
	// request succeeded.
	Err string `json:"err,omitempty"`
}

// Replace swaps the whole set for a fresh response, clearing any prior
// error and continuation state.
func (r *ResultSet) Replace(resp *SearchResponse) {
	r.Episodes = resp.Episodes
	r.QueryTime = resp.QueryTime
	r.NextPage = resp.NextPage
	r.Err = ""
}

// Append merges a continuation page into the set: episodes are added to
// the end, the token and query time move forward, and any stale error
// is cleared.
func (r *ResultSet) Append(resp *SearchResponse) {
	r.Episodes = append(r.Episodes, resp.Episodes...)
	r.QueryTime = resp.QueryTime
	r.NextPage = resp.NextPage
	r.Err = ""
}

// Fail records a request failure. Previously accumulated episodes and
// the continuation token are left untouched, so a partial result stays
// visible and a retry remains possible.
func (r *ResultSet) Fail(msg string) {
	r.Err = msg
}

// CanLoadMore reports whether a continuation token is available.
func (r *ResultSet) CanLoadMore() bool {
	return r.NextPage != nil
}

// TotalHighlights is the number of excerpt groups across all held
// episodes. It counts groups, not matched spans within a group, and is
// recomputed on every call.
func (r *ResultSet) TotalHighlights() int {
	total := 0
	for i := range r.Episodes {
		total += len(r.Episodes[i].Highlights)
	}
	return total
}
