package schedule

import (
	"context"
	"fmt"

	"clinicbook/models"
)

// CheckConflict verifies a candidate interval does not overlap any existing
// available slot for the doctor under the same day-key. excludeID skips the
// slot being edited. On conflict the returned *ConflictError names the
// offending slot so the front desk sees which interval is in the way.
//
// Bulk template generation skips this check; it assumes a clean slate.
func (s *DefaultScheduleService) CheckConflict(ctx context.Context, doctorID string, key models.DayKey, start, end, excludeID string) error {
	startMin, err := ToMinutes(start)
	if err != nil {
		return err
	}
	endMin, err := ToMinutes(end)
	if err != nil {
		return err
	}
	if endMin <= startMin {
		return fmt.Errorf("%w: end %s must be after start %s", ErrInvalidTimeFormat, end, start)
	}

	existing, err := s.Repo.GetAvailableByKey(ctx, doctorID, key)
	if err != nil {
		return fmt.Errorf("failed to fetch slots for conflict check: %w", err)
	}

	for _, slot := range existing {
		if excludeID != "" && slot.ID == excludeID {
			continue
		}
		es, err := ToMinutes(slot.StartTime)
		if err != nil {
			continue // malformed stored slot cannot be compared
		}
		ee, err := ToMinutes(slot.EndTime)
		if err != nil {
			continue
		}
		if rangesOverlap(es, ee, startMin, endMin) {
			return &ConflictError{Conflicting: slot}
		}
	}
	return nil
}
