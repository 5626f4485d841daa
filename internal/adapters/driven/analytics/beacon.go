// Package analytics sends fire-and-forget search submission events.
// Nothing in here may ever surface an error to the user; the session
// logs failures and moves on.
package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/attable-dev/tatt-cli/internal/core/domain"
	"github.com/attable-dev/tatt-cli/internal/core/ports/driven"
)

// eventsPerSecond throttles how fast a single session may emit events.
// Rapid repeat submissions are dropped silently rather than queued.
const eventsPerSecond = 2

// Ensure Beacon implements the interface.
var _ driven.AnalyticsSink = (*Beacon)(nil)

// Beacon posts search events to an HTTP collector.
type Beacon struct {
	endpoint   string
	httpClient *http.Client
	limiter    *rate.Limiter

	// sessionID groups one process run's events.
	sessionID uuid.UUID
}

// event is the collector's wire shape.
type event struct {
	EventID   uuid.UUID `json:"event_id"`
	SessionID uuid.UUID `json:"session_id"`
	Query     string    `json:"query"`
	Kind      string    `json:"kind"`
	Seasons   []string  `json:"seasons,omitempty"`
	At        time.Time `json:"at"`
}

// NewBeacon creates a beacon posting to the given endpoint. A nil
// httpClient falls back to http.DefaultClient.
func NewBeacon(endpoint string, httpClient *http.Client) *Beacon {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Beacon{
		endpoint:   endpoint,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(eventsPerSecond), eventsPerSecond),
		sessionID:  uuid.New(),
	}
}

// SearchSubmitted reports one search submission.
func (b *Beacon) SearchSubmitted(ctx context.Context, loc domain.Location) error {
	if !b.limiter.Allow() {
		// Dropped, not an error: the sink is best-effort.
		return nil
	}

	seasons := make([]string, len(loc.Seasons))
	for i, s := range loc.Seasons {
		seasons[i] = string(s)
	}
	kind := loc.Kind
	if kind == "" {
		kind = domain.QueryKindPhrase
	}

	payload, err := json.Marshal(event{
		EventID:   uuid.New(),
		SessionID: b.sessionID,
		Query:     loc.Query,
		Kind:      string(kind),
		Seasons:   seasons,
		At:        time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("encoding event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building event request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("posting event: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("collector returned %s", resp.Status)
	}
	return nil
}
