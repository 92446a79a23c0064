package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinicbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CreateSlot validates times, derives the duration, runs the conflict check
// and persists one manually added slot.
func (s *DefaultScheduleService) CreateSlot(ctx context.Context, req models.CreateSlotRequest) (*models.Slot, error) {
	startMin, err := ToMinutes(req.StartTime)
	if err != nil {
		return nil, err
	}
	endMin, err := ToMinutes(req.EndTime)
	if err != nil {
		return nil, err
	}
	if endMin <= startMin {
		return nil, fmt.Errorf("%w: end %s must be after start %s", ErrInvalidTimeFormat, req.EndTime, req.StartTime)
	}

	slot := models.Slot{
		DoctorID:    req.DoctorID,
		Day:         req.Day,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Duration:    endMin - startMin,
		IsAvailable: true,
		IsAdminOnly: req.IsAdminOnly,
	}
	if slot.Date != "" {
		day, err := time.Parse(dateLayout, slot.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDateInput, slot.Date)
		}
		// Day is display metadata on date-specific slots; keep it honest.
		slot.Day = day.Weekday().String()
	} else if slot.Day == "" {
		return nil, fmt.Errorf("either day or date is required")
	}

	if err := s.CheckConflict(ctx, slot.DoctorID, slot.Key(), slot.StartTime, slot.EndTime, ""); err != nil {
		return nil, err
	}
	return s.Repo.Create(ctx, slot)
}

// UpdateSlot applies a partial edit. A change in time or day-key re-runs the
// conflict check, excluding the slot itself.
func (s *DefaultScheduleService) UpdateSlot(ctx context.Context, slotID string, req models.UpdateSlotRequest) (*models.Slot, error) {
	current, err := s.Repo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}

	next := *current
	rekeyed := false
	if req.Day != nil && *req.Day != current.Day {
		next.Day = *req.Day
		next.Date = ""
		rekeyed = true
	}
	if req.Date != nil && *req.Date != current.Date {
		next.Date = *req.Date
		rekeyed = true
	}
	if req.StartTime != nil {
		next.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		next.EndTime = *req.EndTime
	}

	startMin, err := ToMinutes(next.StartTime)
	if err != nil {
		return nil, err
	}
	endMin, err := ToMinutes(next.EndTime)
	if err != nil {
		return nil, err
	}
	if endMin <= startMin {
		return nil, fmt.Errorf("%w: end %s must be after start %s", ErrInvalidTimeFormat, next.EndTime, next.StartTime)
	}
	next.Duration = endMin - startMin

	if next.Date != "" {
		day, err := time.Parse(dateLayout, next.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDateInput, next.Date)
		}
		next.Day = day.Weekday().String()
	} else if next.Day == "" {
		return nil, fmt.Errorf("either day or date is required")
	}

	timeChanged := next.StartTime != current.StartTime || next.EndTime != current.EndTime
	if rekeyed || timeChanged {
		if err := s.CheckConflict(ctx, next.DoctorID, next.Key(), next.StartTime, next.EndTime, slotID); err != nil {
			return nil, err
		}
	}

	fields := map[string]interface{}{
		"day":       next.Day,
		"date":      next.Date,
		"startTime": next.StartTime,
		"endTime":   next.EndTime,
		"duration":  next.Duration,
	}
	if req.IsAvailable != nil {
		fields["isAvailable"] = *req.IsAvailable
	}
	if req.IsAdminOnly != nil {
		fields["isAdminOnly"] = *req.IsAdminOnly
	}
	return s.Repo.UpdateFields(ctx, slotID, fields)
}

// DuplicateSlot copies an existing slot onto another day-key, conflict-checked
// against the target key. The copy starts unbooked and available.
func (s *DefaultScheduleService) DuplicateSlot(ctx context.Context, slotID string, key models.DayKey) (*models.Slot, error) {
	src, err := s.Repo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}

	dup := models.Slot{
		DoctorID:    src.DoctorID,
		StartTime:   src.StartTime,
		EndTime:     src.EndTime,
		Duration:    src.Duration,
		IsAvailable: true,
		IsAdminOnly: src.IsAdminOnly,
	}
	switch key.Kind {
	case models.KeyDate:
		day, err := time.Parse(dateLayout, key.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDateInput, key.Date)
		}
		dup.Date = key.Date
		dup.Day = day.Weekday().String()
	default:
		dup.Day = key.Weekday
	}

	if err := s.CheckConflict(ctx, dup.DoctorID, dup.Key(), dup.StartTime, dup.EndTime, ""); err != nil {
		return nil, err
	}
	return s.Repo.Create(ctx, dup)
}

// DeleteSlot removes a slot. Deleting a booked slot is allowed here; whether
// that cancels the appointment is the booking service's policy.
func (s *DefaultScheduleService) DeleteSlot(ctx context.Context, slotID string) error {
	if err := s.Repo.DeleteByID(ctx, slotID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrSlotNotFound
		}
		return err
	}
	return nil
}

// Book performs the Available -> Booked transition through the repository's
// conditional update. When the update matches nothing the slot is fetched
// once to report why: missing, disabled, or lost race.
func (s *DefaultScheduleService) Book(ctx context.Context, slotID, bookedBy string) (*models.Slot, error) {
	booked, err := s.Repo.TryBook(ctx, slotID, bookedBy)
	if err == nil {
		return booked, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("booking update failed: %w", err)
	}

	slot, ferr := s.Repo.GetByID(ctx, slotID)
	if ferr != nil {
		if errors.Is(ferr, mongo.ErrNoDocuments) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("booking update failed: %w", ferr)
	}
	if !slot.IsAvailable {
		return nil, ErrSlotUnavailable
	}
	return nil, ErrSlotAlreadyBooked
}

// CancelBooking clears BookedBy, returning the slot to the bookable pool.
func (s *DefaultScheduleService) CancelBooking(ctx context.Context, slotID string) (*models.Slot, error) {
	slot, err := s.Repo.ClearBooking(ctx, slotID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return slot, nil
}

// BulkMutate applies one action to each id independently; one failure never
// aborts the rest. Results come back in input order.
func (s *DefaultScheduleService) BulkMutate(ctx context.Context, ids []string, action models.BulkAction) []models.BulkResult {
	results := make([]models.BulkResult, 0, len(ids))
	for _, id := range ids {
		var err error
		switch action {
		case models.BulkEnable:
			_, err = s.Repo.UpdateFields(ctx, id, map[string]interface{}{"isAvailable": true})
		case models.BulkDisable:
			_, err = s.Repo.UpdateFields(ctx, id, map[string]interface{}{"isAvailable": false})
		case models.BulkSetAdminOnly:
			_, err = s.Repo.UpdateFields(ctx, id, map[string]interface{}{"isAdminOnly": true})
		case models.BulkUnsetAdmin:
			_, err = s.Repo.UpdateFields(ctx, id, map[string]interface{}{"isAdminOnly": false})
		case models.BulkDelete:
			err = s.Repo.DeleteByID(ctx, id)
		default:
			err = fmt.Errorf("unknown bulk action %q", action)
		}
		if err != nil && errors.Is(err, mongo.ErrNoDocuments) {
			err = ErrSlotNotFound
		}

		res := models.BulkResult{SlotID: id, OK: err == nil}
		if err != nil {
			res.Error = err.Error()
		}
		results = append(results, res)
	}
	return results
}
