package driven

import (
	"context"
	"time"

	"github.com/attable-dev/tatt-cli/internal/core/domain"
)

// HistoryStore persists submitted search locations.
type HistoryStore interface {
	// Record stores one visited location.
	Record(ctx context.Context, loc domain.Location, at time.Time) error

	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error)

	// Close releases resources.
	Close() error
}
