// models/availability.go
package models

import "time"

// TimeSlot is a derived, never-persisted bookable sub-interval of a day.
type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"` // e.g. "09:30"
}

// FreeWindowSet maps a calendar date ("2006-01-02") to the ordered free
// slots for that day. Computed per (advisor, date range) request and owned
// by the caller; it reflects the appointment state at compute time and is
// never cached.
type FreeWindowSet map[string][]TimeSlot
