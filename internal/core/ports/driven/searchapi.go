package driven

import (
	"context"

	"github.com/attable-dev/tatt-cli/internal/core/domain"
)

// SearchAPI issues search requests against the remote service.
type SearchAPI interface {
	// Search performs one search or continuation call. A non-2xx
	// response or transport failure is returned as an error carrying a
	// human-readable message; there are no automatic retries.
	Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResponse, error)
}
