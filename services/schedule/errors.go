package schedule

import (
	"errors"
	"fmt"

	"clinicbook/models"
)

var (
	// ErrInvalidTimeFormat is returned for times that are not "HH:MM" 24h.
	ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")
	// ErrInvalidDateInput is returned for dates that are not "2006-01-02".
	ErrInvalidDateInput = errors.New("invalid date, expected YYYY-MM-DD")
	// ErrSlotNotFound is returned when the referenced slot does not exist.
	ErrSlotNotFound = errors.New("slot not found")
	// ErrSlotUnavailable is returned when booking a manually disabled slot.
	ErrSlotUnavailable = errors.New("slot is not available")
	// ErrSlotAlreadyBooked is returned to the loser of a booking race.
	ErrSlotAlreadyBooked = errors.New("slot is already booked")
)

// ConflictError reports an overlap with an existing slot. It carries the
// conflicting slot so callers can tell the user exactly which interval is in
// the way.
type ConflictError struct {
	Conflicting models.Slot
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slot overlaps existing slot %s on %s (%s-%s)",
		e.Conflicting.ID, e.Conflicting.Key(), e.Conflicting.StartTime, e.Conflicting.EndTime)
}
