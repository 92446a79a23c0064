package schedule

import (
	"context"
	"errors"
	"testing"

	"clinicbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckConflict_OverlapIdentifiesConflictingSlot(t *testing.T) {
	svc, repo := newTestService()
	existing := repo.add(weeklySlot("doc-1", "Monday", "09:00", "09:30"))

	err := svc.CheckConflict(context.Background(), "doc-1", models.WeekdayKey("Monday"), "09:15", "09:45", "")
	require.Error(t, err)

	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, existing.ID, conflict.Conflicting.ID)
	assert.Equal(t, "09:00", conflict.Conflicting.StartTime)
	assert.Equal(t, "09:30", conflict.Conflicting.EndTime)
	assert.Contains(t, conflict.Error(), "Monday")
}

func TestCheckConflict_AdjacentIsAllowed(t *testing.T) {
	svc, repo := newTestService()
	repo.add(weeklySlot("doc-1", "Monday", "09:00", "09:30"))

	err := svc.CheckConflict(context.Background(), "doc-1", models.WeekdayKey("Monday"), "09:30", "10:00", "")
	assert.NoError(t, err)
}

func TestCheckConflict_ScopedToDayKey(t *testing.T) {
	svc, repo := newTestService()
	repo.add(weeklySlot("doc-1", "Monday", "09:00", "09:30"))

	// Same interval is fine on a different weekday and on a date key.
	err := svc.CheckConflict(context.Background(), "doc-1", models.WeekdayKey("Tuesday"), "09:00", "09:30", "")
	assert.NoError(t, err)
	err = svc.CheckConflict(context.Background(), "doc-1", models.DateKey(aMonday), "09:00", "09:30", "")
	assert.NoError(t, err)
}

func TestCheckConflict_IgnoresOtherDoctors(t *testing.T) {
	svc, repo := newTestService()
	repo.add(weeklySlot("doc-2", "Monday", "09:00", "09:30"))

	err := svc.CheckConflict(context.Background(), "doc-1", models.WeekdayKey("Monday"), "09:00", "09:30", "")
	assert.NoError(t, err)
}

func TestCheckConflict_IgnoresDisabledSlots(t *testing.T) {
	svc, repo := newTestService()
	disabled := weeklySlot("doc-1", "Monday", "09:00", "09:30")
	disabled.IsAvailable = false
	repo.add(disabled)

	err := svc.CheckConflict(context.Background(), "doc-1", models.WeekdayKey("Monday"), "09:00", "09:30", "")
	assert.NoError(t, err)
}

func TestCheckConflict_ExcludesSlotBeingEdited(t *testing.T) {
	svc, repo := newTestService()
	editing := repo.add(weeklySlot("doc-1", "Monday", "09:00", "09:30"))

	// Stretching the same slot must not conflict with itself.
	err := svc.CheckConflict(context.Background(), "doc-1", models.WeekdayKey("Monday"), "09:00", "09:45", editing.ID)
	assert.NoError(t, err)
}

func TestCheckConflict_RejectsInvertedRange(t *testing.T) {
	svc, _ := newTestService()
	err := svc.CheckConflict(context.Background(), "doc-1", models.WeekdayKey("Monday"), "10:00", "09:00", "")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}
