// Package nav provides the navigator: the terminal stand-in for the
// browser address bar, a history stack of search locations with
// back/forward movement.
package nav

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/attable-dev/tatt-cli/internal/core/domain"
	"github.com/attable-dev/tatt-cli/internal/core/ports/driven"
	"github.com/attable-dev/tatt-cli/internal/logger"
)

// Ensure History implements the interface.
var _ driven.Navigator = (*History)(nil)

// History is an in-process location stack. Pushing truncates any
// forward entries, like a browser. Back, Forward and Navigate count as
// external changes and notify subscribers; Push does not.
type History struct {
	mu      sync.Mutex
	entries []domain.Location
	index   int
	subs    []func(domain.Location)

	// store receives every pushed location; optional.
	store driven.HistoryStore
}

// NewHistory creates a history sitting on the given initial location.
func NewHistory(initial domain.Location, store driven.HistoryStore) *History {
	return &History{
		entries: []domain.Location{initial},
		store:   store,
	}
}

// Current returns the location the history is sitting on.
func (h *History) Current() domain.Location {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.index]
}

// Push appends loc as the new current location, dropping any forward
// entries, and records it in the store.
func (h *History) Push(loc domain.Location) {
	h.mu.Lock()
	h.entries = append(h.entries[:h.index+1], loc)
	h.index = len(h.entries) - 1
	h.mu.Unlock()

	h.record(loc)
}

// Subscribe registers a callback for external location changes.
func (h *History) Subscribe(fn func(domain.Location)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs = append(h.subs, fn)
}

// Back moves to the previous location and reports whether it could.
func (h *History) Back() bool {
	h.mu.Lock()
	if h.index == 0 {
		h.mu.Unlock()
		return false
	}
	h.index--
	loc := h.entries[h.index]
	subs := h.subs
	h.mu.Unlock()

	notify(subs, loc)
	return true
}

// Forward moves to the next location and reports whether it could.
func (h *History) Forward() bool {
	h.mu.Lock()
	if h.index >= len(h.entries)-1 {
		h.mu.Unlock()
		return false
	}
	h.index++
	loc := h.entries[h.index]
	subs := h.subs
	h.mu.Unlock()

	notify(subs, loc)
	return true
}

// Navigate applies a raw query string (e.g. a pasted address) as an
// external navigation. Parameters absent from the raw query keep the
// current location's values, and subscribers are notified with the
// merged result.
func (h *History) Navigate(rawQuery string) error {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return err
	}

	h.mu.Lock()
	loc := h.entries[h.index].Merge(values)
	h.entries = append(h.entries[:h.index+1], loc)
	h.index = len(h.entries) - 1
	subs := h.subs
	h.mu.Unlock()

	h.record(loc)
	notify(subs, loc)
	return nil
}

func (h *History) record(loc domain.Location) {
	if h.store == nil {
		return
	}
	if err := h.store.Record(context.Background(), loc, time.Now()); err != nil {
		logger.Warn("Recording history: %v", err)
	}
}

func notify(subs []func(domain.Location), loc domain.Location) {
	for _, fn := range subs {
		fn(loc)
	}
}
