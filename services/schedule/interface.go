// File: services/schedule/interface.go
package schedule

import (
	"context"

	slotRepo "clinicbook/database/repository/slot"
	"clinicbook/models"
)

// ScheduleService owns slot resolution and every slot state transition.
type ScheduleService interface {
	ResolveAvailability(ctx context.Context, doctorID, date string, role models.Role) ([]models.Slot, error)
	CheckConflict(ctx context.Context, doctorID string, key models.DayKey, start, end, excludeID string) error

	CreateSlot(ctx context.Context, req models.CreateSlotRequest) (*models.Slot, error)
	UpdateSlot(ctx context.Context, slotID string, req models.UpdateSlotRequest) (*models.Slot, error)
	DuplicateSlot(ctx context.Context, slotID string, key models.DayKey) (*models.Slot, error)
	DeleteSlot(ctx context.Context, slotID string) error
	BulkMutate(ctx context.Context, ids []string, action models.BulkAction) []models.BulkResult

	Book(ctx context.Context, slotID, bookedBy string) (*models.Slot, error)
	CancelBooking(ctx context.Context, slotID string) (*models.Slot, error)
}

// DefaultScheduleService is the production implementation over the slot
// repository.
type DefaultScheduleService struct {
	Repo slotRepo.SlotRepository
}
