package services

import (
	"context"
	"sync"

	"github.com/attable-dev/tatt-cli/internal/core/domain"
	"github.com/attable-dev/tatt-cli/internal/core/ports/driven"
	"github.com/attable-dev/tatt-cli/internal/core/ports/driving"
	"github.com/attable-dev/tatt-cli/internal/logger"
)

// Ensure SessionService implements the interface.
var _ driving.SessionService = (*SessionService)(nil)

// SessionService owns the search session: the canonical query, the
// aggregated result set, and their synchronisation with the navigator.
//
// All mutable state sits behind one mutex. The lock guards memory
// safety only; overlapping submissions are not coalesced or cancelled,
// so whichever response lands last wins, regardless of submission
// order.
type SessionService struct {
	api       driven.SearchAPI
	nav       driven.Navigator
	analytics driven.AnalyticsSink

	mu      sync.Mutex
	state   domain.SearchQuery
	results domain.ResultSet
}

// Option configures a SessionService.
type Option func(*SessionService)

// WithAnalytics attaches a fire-and-forget analytics sink.
func WithAnalytics(sink driven.AnalyticsSink) Option {
	return func(s *SessionService) {
		s.analytics = sink
	}
}

// WithPageSize sets the requested result page size.
func WithPageSize(size int) Option {
	return func(s *SessionService) {
		s.state.PageSize = size
	}
}

// NewSessionService creates a session seeded from the navigator's
// current location. External navigation (back/forward) merges into the
// session state and re-runs the search.
func NewSessionService(api driven.SearchAPI, nav driven.Navigator, opts ...Option) *SessionService {
	s := &SessionService{
		api: api,
		nav: nav,
	}
	s.state = nav.Current().SearchQuery()
	for _, opt := range opts {
		opt(s)
	}
	nav.Subscribe(s.handleNavigation)
	return s
}

// State returns the current in-memory query.
func (s *SessionService) State() domain.SearchQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetText replaces the query text.
func (s *SessionService) SetText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Text = text
}

// SetKind replaces the query kind.
func (s *SessionService) SetKind(kind domain.QueryKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Kind = kind
}

// SetSeasons replaces the season selection.
func (s *SessionService) SetSeasons(seasons []domain.Season) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Seasons = append([]domain.Season(nil), seasons...)
}

// SetPageSize overrides the requested result page size.
func (s *SessionService) SetPageSize(size int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.PageSize = size
}

// Results returns a snapshot of the aggregated result set.
func (s *SessionService) Results() domain.ResultSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}

// TotalHighlights is the excerpt-group count across all held episodes.
func (s *SessionService) TotalHighlights() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results.TotalHighlights()
}

// RunSearch submits the current state as a fresh top-level search.
// The address is pushed and analytics notified before the network call,
// so the user's intent is reflected immediately; the response then
// replaces the result set wholesale.
func (s *SessionService) RunSearch(ctx context.Context) domain.ResultSet {
	s.mu.Lock()
	s.state.Page = ""
	s.state.Highlight = true
	query := s.state
	s.mu.Unlock()

	loc := query.Location()
	logger.Section("Search")
	logger.Debug("Query: %q kind=%s seasons=%v", query.Text, query.Kind, query.Seasons)
	logger.Debug("Address: %s", loc.String())

	s.nav.Push(loc)
	s.notifyAnalytics(loc)

	return s.run(ctx, query)
}

// LoadMore requests the next result page. Without a continuation token
// it is a no-op.
func (s *SessionService) LoadMore(ctx context.Context) domain.ResultSet {
	s.mu.Lock()
	if s.results.NextPage == nil {
		defer s.mu.Unlock()
		logger.Debug("Load more without a continuation token, ignoring")
		return s.results
	}
	query := s.state.Continuation(*s.results.NextPage)
	s.mu.Unlock()

	logger.Debug("Loading next page, token=%q", query.Page)

	resp, err := s.api.Search(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		logger.Warn("Continuation failed: %v", err)
		s.results.Fail(err.Error())
		return s.results
	}
	s.results.Append(resp)
	logger.Debug("Page appended, %d episodes total", len(s.results.Episodes))
	return s.results
}

// run performs the network call and commits the response wholesale.
func (s *SessionService) run(ctx context.Context, query domain.SearchQuery) domain.ResultSet {
	resp, err := s.api.Search(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		logger.Warn("Search failed: %v", err)
		s.results = domain.ResultSet{}
		s.results.Fail(err.Error())
		return s.results
	}
	s.results.Replace(resp)
	logger.Debug("Search done in %dms, %d episodes", resp.QueryTime, len(resp.Episodes))
	return s.results
}

// handleNavigation merges an external location change into the session
// and re-runs the search without pushing a new address.
func (s *SessionService) handleNavigation(loc domain.Location) {
	s.mu.Lock()
	query := loc.SearchQuery()
	query.PageSize = s.state.PageSize
	s.state = query
	s.mu.Unlock()

	logger.Debug("Navigation: %s", loc.String())
	s.run(context.Background(), query)
}

// notifyAnalytics reports the submission without ever surfacing a
// failure to the caller.
func (s *SessionService) notifyAnalytics(loc domain.Location) {
	if s.analytics == nil {
		return
	}
	go func() {
		if err := s.analytics.SearchSubmitted(context.Background(), loc); err != nil {
			logger.Warn("Analytics: %v", err)
		}
	}()
}
