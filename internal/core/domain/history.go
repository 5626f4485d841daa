package domain

import "time"

// HistoryEntry is one recorded search location, newest-first in
// listings.
type HistoryEntry struct {
	// Location is the address that was pushed.
	Location Location

	// At is when the search was submitted.
	At time.Time
}
