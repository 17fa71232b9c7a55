package booking

import "errors"

var (
	// ErrInvalidRange signals an inverted or over-long requested date range.
	ErrInvalidRange = errors.New("invalid date range")
	// ErrMissingSchedule signals that the advisor has no shift configuration.
	ErrMissingSchedule = errors.New("advisor has no shift schedule")
	// ErrSlotTaken signals that the advisor already has an appointment at the
	// requested start time.
	ErrSlotTaken = errors.New("advisor is not available at this time")
	// ErrNotOwner signals that the acting user owns neither side of the
	// appointment.
	ErrNotOwner = errors.New("appointment does not belong to this user")
)
