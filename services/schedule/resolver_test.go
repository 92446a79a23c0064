package schedule

import (
	"context"
	"testing"

	"clinicbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-09-01 is a Monday.
const aMonday = "2025-09-01"

func newTestService() (*DefaultScheduleService, *memSlotRepo) {
	repo := newMemSlotRepo()
	return &DefaultScheduleService{Repo: repo}, repo
}

func weeklySlot(doctorID, day, start, end string) models.Slot {
	startMin, _ := ToMinutes(start)
	endMin, _ := ToMinutes(end)
	return models.Slot{
		DoctorID:    doctorID,
		Day:         day,
		StartTime:   start,
		EndTime:     end,
		Duration:    endMin - startMin,
		IsAvailable: true,
	}
}

func TestResolveAvailability_ExcludesBooked(t *testing.T) {
	svc, repo := newTestService()
	repo.add(weeklySlot("doc-1", "Monday", "09:00", "09:15"))
	booked := weeklySlot("doc-1", "Monday", "09:15", "09:30")
	booked.BookedBy = "appt-42"
	repo.add(booked)
	repo.add(weeklySlot("doc-1", "Monday", "09:30", "09:45"))

	slots, err := svc.ResolveAvailability(context.Background(), "doc-1", aMonday, models.RolePatient)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "09:30", slots[1].StartTime)
}

func TestResolveAvailability_ExcludesDisabled(t *testing.T) {
	svc, repo := newTestService()
	disabled := weeklySlot("doc-1", "Monday", "09:00", "09:15")
	disabled.IsAvailable = false
	repo.add(disabled)
	repo.add(weeklySlot("doc-1", "Monday", "09:15", "09:30"))

	slots, err := svc.ResolveAvailability(context.Background(), "doc-1", aMonday, models.RolePatient)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "09:15", slots[0].StartTime)
}

func TestResolveAvailability_AdminOnlyFiltering(t *testing.T) {
	svc, repo := newTestService()
	staff := weeklySlot("doc-1", "Monday", "06:30", "06:45")
	staff.IsAdminOnly = true
	repo.add(staff)
	repo.add(weeklySlot("doc-1", "Monday", "09:00", "09:15"))

	patientView, err := svc.ResolveAvailability(context.Background(), "doc-1", aMonday, models.RolePatient)
	require.NoError(t, err)
	require.Len(t, patientView, 1)
	assert.Equal(t, "09:00", patientView[0].StartTime)

	adminView, err := svc.ResolveAvailability(context.Background(), "doc-1", aMonday, models.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, adminView, 2)
	assert.Equal(t, "06:30", adminView[0].StartTime)
}

func TestResolveAvailability_DateOverridesLayerOnTemplates(t *testing.T) {
	svc, repo := newTestService()
	repo.add(weeklySlot("doc-1", "Monday", "09:00", "09:15"))

	oneOff := weeklySlot("doc-1", "Monday", "20:00", "20:30")
	oneOff.Date = aMonday
	repo.add(oneOff)

	// A one-off on a different date must not leak in.
	otherDay := weeklySlot("doc-1", "Tuesday", "08:00", "08:30")
	otherDay.Date = "2025-09-02"
	repo.add(otherDay)

	slots, err := svc.ResolveAvailability(context.Background(), "doc-1", aMonday, models.RolePatient)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "20:00", slots[1].StartTime)
}

func TestResolveAvailability_SortedByStartTime(t *testing.T) {
	svc, repo := newTestService()
	repo.add(weeklySlot("doc-1", "Monday", "14:00", "14:15"))
	repo.add(weeklySlot("doc-1", "Monday", "06:30", "06:45"))
	repo.add(weeklySlot("doc-1", "Monday", "09:00", "09:15"))

	slots, err := svc.ResolveAvailability(context.Background(), "doc-1", aMonday, models.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, slots, 3)
	assert.Equal(t, "06:30", slots[0].StartTime)
	assert.Equal(t, "09:00", slots[1].StartTime)
	assert.Equal(t, "14:00", slots[2].StartTime)
}

func TestResolveAvailability_EmptyIsNotAnError(t *testing.T) {
	svc, repo := newTestService()
	repo.add(weeklySlot("doc-1", "Tuesday", "09:00", "09:15"))

	slots, err := svc.ResolveAvailability(context.Background(), "doc-1", aMonday, models.RolePatient)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestResolveAvailability_InvalidDate(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.ResolveAvailability(context.Background(), "doc-1", "09/01/2025", models.RolePatient)
	assert.ErrorIs(t, err, ErrInvalidDateInput)
}
