// Package model defines the persisted domain types for timeperiod.
//
// A calendar is a named, unordered bag of labelled periods: a meeting room's
// bookings, a person's absences, a service's maintenance windows. Calendars
// are not declared up front; one exists as long as it holds an entry.
package model

import (
	"time"

	"github.com/daviddao/timeperiod/pkg/period"
)

// Entry is a single labelled period stored in a calendar.
type Entry struct {
	ID        string        `json:"id"`
	Calendar  string        `json:"calendar"`
	Label     string        `json:"label,omitempty"`
	Period    period.Period `json:"period"`
	CreatedAt time.Time     `json:"created_at"`
}

// CalendarSummary describes a calendar without loading its entries.
type CalendarSummary struct {
	Name   string         `json:"name"`
	Count  int64          `json:"count"`
	Bounds *period.Period `json:"bounds,omitempty"`
}

// Periods extracts the periods of entries, keeping their order.
func Periods(entries []Entry) period.Collection {
	out := make(period.Collection, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Period)
	}
	return out
}

// Containing returns the entries whose period contains t.
func Containing(entries []Entry, t time.Time) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Period.Contains(t) {
			out = append(out, e)
		}
	}
	return out
}
