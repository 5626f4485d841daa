package driven

import "github.com/attable-dev/tatt-cli/internal/core/domain"

// Navigator is the address-bar collaborator: it holds the current
// location and notifies subscribers about externally triggered changes
// (back/forward navigation).
type Navigator interface {
	// Current returns the location the navigator is sitting on.
	Current() domain.Location

	// Push makes loc the new current location. A push is a forward
	// navigation; it does not notify subscribers.
	Push(loc domain.Location)

	// Subscribe registers a callback for external location changes.
	// Callbacks run synchronously on the navigating goroutine.
	Subscribe(fn func(domain.Location))
}
