package driving

import (
	"context"

	"github.com/attable-dev/tatt-cli/internal/core/domain"
)

// SessionService is the search session: the canonical query state, its
// synchronisation with the navigator, and the aggregated result set.
//
// Request failures never escape as errors; they are recorded on the
// returned ResultSet instead.
type SessionService interface {
	// State returns the current in-memory query.
	State() domain.SearchQuery

	// SetText replaces the query text.
	SetText(text string)

	// SetKind replaces the query kind.
	SetKind(kind domain.QueryKind)

	// SetSeasons replaces the season selection.
	SetSeasons(seasons []domain.Season)

	// SetPageSize overrides the requested result page size.
	SetPageSize(size int)

	// RunSearch submits the current state as a fresh top-level search.
	// The address is pushed before the network call so intent is
	// visible immediately; the response then replaces the result set
	// wholesale.
	RunSearch(ctx context.Context) domain.ResultSet

	// LoadMore requests the next result page. Without a continuation
	// token it is a no-op. On success new episodes are appended; on
	// failure the partial result set is kept and only the error is
	// recorded.
	LoadMore(ctx context.Context) domain.ResultSet

	// Results returns a snapshot of the aggregated result set.
	Results() domain.ResultSet

	// TotalHighlights is the excerpt-group count across all held
	// episodes, recomputed on every call.
	TotalHighlights() int
}
