package schedule

import (
	"context"
	"errors"
	"sync"
	"testing"

	"clinicbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSlot_ComputesDurationAndWeekday(t *testing.T) {
	svc, _ := newTestService()
	slot, err := svc.CreateSlot(context.Background(), models.CreateSlotRequest{
		DoctorID:  "doc-1",
		Date:      aMonday,
		StartTime: "10:00",
		EndTime:   "10:45",
	})
	require.NoError(t, err)
	assert.Equal(t, 45, slot.Duration)
	assert.Equal(t, "Monday", slot.Day, "day is derived from the date for display")
	assert.Equal(t, models.DateKey(aMonday), slot.Key())
	assert.True(t, slot.IsAvailable)
}

func TestCreateSlot_RejectsOverlap(t *testing.T) {
	svc, repo := newTestService()
	repo.add(weeklySlot("doc-1", "Monday", "09:00", "09:30"))

	_, err := svc.CreateSlot(context.Background(), models.CreateSlotRequest{
		DoctorID:  "doc-1",
		Day:       "Monday",
		StartTime: "09:15",
		EndTime:   "09:45",
	})
	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))

	// Adjacent slot goes through.
	_, err = svc.CreateSlot(context.Background(), models.CreateSlotRequest{
		DoctorID:  "doc-1",
		Day:       "Monday",
		StartTime: "09:30",
		EndTime:   "10:00",
	})
	assert.NoError(t, err)
}

func TestCreateSlot_Validation(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateSlot(context.Background(), models.CreateSlotRequest{
		DoctorID: "doc-1", Day: "Monday", StartTime: "10:00", EndTime: "09:00",
	})
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = svc.CreateSlot(context.Background(), models.CreateSlotRequest{
		DoctorID: "doc-1", Date: "bad-date", StartTime: "09:00", EndTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrInvalidDateInput)

	_, err = svc.CreateSlot(context.Background(), models.CreateSlotRequest{
		DoctorID: "doc-1", StartTime: "09:00", EndTime: "10:00",
	})
	assert.Error(t, err, "day or date is required")
}

func TestUpdateSlot_TimeChangeRunsConflictCheck(t *testing.T) {
	svc, repo := newTestService()
	repo.add(weeklySlot("doc-1", "Monday", "09:00", "09:30"))
	target := repo.add(weeklySlot("doc-1", "Monday", "10:00", "10:30"))

	start := "09:15"
	_, err := svc.UpdateSlot(context.Background(), target.ID, models.UpdateSlotRequest{StartTime: &start})
	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))

	// Non-overlapping move succeeds and recomputes duration.
	start = "11:00"
	end := "11:20"
	updated, err := svc.UpdateSlot(context.Background(), target.ID, models.UpdateSlotRequest{StartTime: &start, EndTime: &end})
	require.NoError(t, err)
	assert.Equal(t, 20, updated.Duration)
}

func TestUpdateSlot_FlagFlipsSkipConflictCheck(t *testing.T) {
	svc, repo := newTestService()
	target := repo.add(weeklySlot("doc-1", "Monday", "09:00", "09:30"))

	off := false
	updated, err := svc.UpdateSlot(context.Background(), target.ID, models.UpdateSlotRequest{IsAvailable: &off})
	require.NoError(t, err)
	assert.False(t, updated.IsAvailable)
}

func TestUpdateSlot_NotFound(t *testing.T) {
	svc, _ := newTestService()
	start := "09:00"
	_, err := svc.UpdateSlot(context.Background(), "missing", models.UpdateSlotRequest{StartTime: &start})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestDuplicateSlot(t *testing.T) {
	svc, repo := newTestService()
	src := repo.add(weeklySlot("doc-1", "Monday", "09:00", "09:30"))

	dup, err := svc.DuplicateSlot(context.Background(), src.ID, models.WeekdayKey("Tuesday"))
	require.NoError(t, err)
	assert.Equal(t, "Tuesday", dup.Day)
	assert.Equal(t, "09:00", dup.StartTime)

	// Duplicating onto the same key collides with the original.
	_, err = svc.DuplicateSlot(context.Background(), src.ID, models.WeekdayKey("Monday"))
	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
}

func TestBook_Transitions(t *testing.T) {
	svc, repo := newTestService()
	slot := repo.add(weeklySlot("doc-1", "Monday", "09:00", "09:15"))

	booked, err := svc.Book(context.Background(), slot.ID, "appt-1")
	require.NoError(t, err)
	assert.Equal(t, "appt-1", booked.BookedBy)

	// Second attempt loses.
	_, err = svc.Book(context.Background(), slot.ID, "appt-2")
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)

	// Cancellation reopens the slot.
	reopened, err := svc.CancelBooking(context.Background(), slot.ID)
	require.NoError(t, err)
	assert.Empty(t, reopened.BookedBy)

	_, err = svc.Book(context.Background(), slot.ID, "appt-3")
	assert.NoError(t, err)
}

func TestBook_DisabledSlot(t *testing.T) {
	svc, repo := newTestService()
	disabled := weeklySlot("doc-1", "Monday", "09:00", "09:15")
	disabled.IsAvailable = false
	slot := repo.add(disabled)

	_, err := svc.Book(context.Background(), slot.ID, "appt-1")
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestBook_MissingSlot(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Book(context.Background(), "missing", "appt-1")
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestBook_RaceExactlyOneWinner(t *testing.T) {
	svc, repo := newTestService()
	slot := repo.add(weeklySlot("doc-1", "Monday", "09:00", "09:15"))

	const racers = 16
	var wg sync.WaitGroup
	errCh := make(chan error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Book(context.Background(), slot.ID, "appt-race")
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	wins, losses := 0, 0
	for err := range errCh {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
			losses++
		}
	}
	assert.Equal(t, 1, wins, "exactly one booking attempt may win")
	assert.Equal(t, racers-1, losses)
}

func TestBulkMutate_PartialSuccess(t *testing.T) {
	svc, repo := newTestService()
	a := repo.add(weeklySlot("doc-1", "Monday", "09:00", "09:15"))
	b := repo.add(weeklySlot("doc-1", "Monday", "09:15", "09:30"))

	results := svc.BulkMutate(context.Background(), []string{a.ID, "missing", b.ID}, models.BulkDisable)
	require.Len(t, results, 3)

	assert.True(t, results[0].OK)
	assert.False(t, results[1].OK)
	assert.Contains(t, results[1].Error, "not found")
	assert.True(t, results[2].OK, "a failing id must not abort the rest")

	gotA, _ := repo.GetByID(context.Background(), a.ID)
	assert.False(t, gotA.IsAvailable)
}

func TestBulkMutate_Actions(t *testing.T) {
	svc, repo := newTestService()
	slot := repo.add(weeklySlot("doc-1", "Monday", "09:00", "09:15"))
	ids := []string{slot.ID}

	svc.BulkMutate(context.Background(), ids, models.BulkSetAdminOnly)
	got, _ := repo.GetByID(context.Background(), slot.ID)
	assert.True(t, got.IsAdminOnly)

	svc.BulkMutate(context.Background(), ids, models.BulkUnsetAdmin)
	got, _ = repo.GetByID(context.Background(), slot.ID)
	assert.False(t, got.IsAdminOnly)

	results := svc.BulkMutate(context.Background(), ids, models.BulkAction("explode"))
	assert.False(t, results[0].OK)

	svc.BulkMutate(context.Background(), ids, models.BulkDelete)
	_, err := repo.GetByID(context.Background(), slot.ID)
	assert.Error(t, err)
}

func TestDeleteSlot(t *testing.T) {
	svc, repo := newTestService()
	slot := repo.add(weeklySlot("doc-1", "Monday", "09:00", "09:15"))

	require.NoError(t, svc.DeleteSlot(context.Background(), slot.ID))
	assert.ErrorIs(t, svc.DeleteSlot(context.Background(), slot.ID), ErrSlotNotFound)
}
