package driven

import (
	"context"

	"github.com/attable-dev/tatt-cli/internal/core/domain"
)

// AnalyticsSink receives search submission events. Calls are
// fire-and-forget from the session's point of view: failures are logged
// and discarded, never surfaced to the user.
type AnalyticsSink interface {
	// SearchSubmitted reports that a top-level search was submitted.
	SearchSubmitted(ctx context.Context, loc domain.Location) error
}
