// iface.go defines the StoreInterface for dependency injection and testing.
//
// The concrete *Store type satisfies this interface. The cmd layer accepts
// StoreInterface so its calendar algebra can be tested against a fake.
package store

import (
	"github.com/daviddao/timeperiod/pkg/model"
	"github.com/daviddao/timeperiod/pkg/period"
)

// StoreInterface defines the full set of store operations.
type StoreInterface interface {
	// Close closes the database connection.
	Close() error

	// AddEntry stores a period in a calendar under a fresh ID.
	AddEntry(calendar, label string, p period.Period) (*model.Entry, error)

	// GetEntry retrieves an entry by ID. Wraps ErrNotFound.
	GetEntry(id string) (*model.Entry, error)

	// RemoveEntry deletes an entry by ID. Wraps ErrNotFound.
	RemoveEntry(id string) error

	// ListEntries returns a calendar's entries ordered by start.
	ListEntries(calendar string) ([]model.Entry, error)

	// Collection returns a calendar's periods in ListEntries order.
	Collection(calendar string) (period.Collection, error)

	// ListCalendars summarizes every non-empty calendar.
	ListCalendars() ([]model.CalendarSummary, error)

	// ClearCalendar deletes a calendar's entries.
	ClearCalendar(calendar string) (int64, error)
}

// Compile-time check that *Store implements StoreInterface.
var _ StoreInterface = (*Store)(nil)
