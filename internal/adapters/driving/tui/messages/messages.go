// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/attable-dev/tatt-cli/internal/core/domain"
)

// SearchCompleted carries the result set of a fresh top-level search.
type SearchCompleted struct {
	Results domain.ResultSet
}

// MoreLoaded carries the result set after a load-more call.
type MoreLoaded struct {
	Results domain.ResultSet
}

// Navigated is sent after a back/forward step through search history.
type Navigated struct {
	// Moved is false when the history had no entry in that direction.
	Moved bool

	Results domain.ResultSet
	State   domain.SearchQuery
}
