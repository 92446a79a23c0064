package schedule

import (
	"context"
	"fmt"
	"sort"
	"time"

	"clinicbook/models"
)

const dateLayout = "2006-01-02"

// ResolveAvailability returns the bookable slots for a doctor on a date,
// ordered by start time. Candidates are the weekly templates for that
// weekday plus any date-specific slots layered on top; disabled, booked and
// (for non-admin callers) admin-only slots are filtered out. An empty result
// is not an error: it means the doctor is off or fully booked that day.
func (s *DefaultScheduleService) ResolveAvailability(ctx context.Context, doctorID, date string, role models.Role) ([]models.Slot, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDateInput, date)
	}
	weekday := day.Weekday().String()

	candidates, err := s.Repo.GetCandidatesForDate(ctx, doctorID, weekday, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate slots: %w", err)
	}

	bookable := candidates[:0]
	for _, slot := range candidates {
		if !slot.IsAvailable {
			continue
		}
		if slot.BookedBy != "" {
			continue
		}
		if slot.IsAdminOnly && role != models.RoleAdmin {
			continue
		}
		bookable = append(bookable, slot)
	}

	// Stable: overlapping available slots cannot coexist per the creation-time
	// conflict check, so insertion order is a sufficient tie-break.
	sort.SliceStable(bookable, func(i, j int) bool {
		mi, _ := ToMinutes(bookable[i].StartTime)
		mj, _ := ToMinutes(bookable[j].StartTime)
		return mi < mj
	})

	return bookable, nil
}
