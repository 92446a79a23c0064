// File: database/repository/slot/interface.go
package slotRepo

import (
	"context"

	"clinicbook/database"
	"clinicbook/models"
	"clinicbook/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SlotRepository is the storage contract the scheduling core runs against.
type SlotRepository interface {
	Create(ctx context.Context, slot models.Slot) (*models.Slot, error)
	CreateMany(ctx context.Context, slots []models.Slot) ([]string, error)
	GetByID(ctx context.Context, slotID string) (*models.Slot, error)
	DeleteByID(ctx context.Context, slotID string) error
	CountByDoctor(ctx context.Context, doctorID string) (int64, error)

	// GetCandidatesForDate returns weekly templates matching the weekday plus
	// one-off slots matching the date, for one doctor.
	GetCandidatesForDate(ctx context.Context, doctorID, weekday, date string) ([]models.Slot, error)
	// GetAvailableByKey returns slots with isAvailable == true under the given
	// day-key, used by the conflict checker.
	GetAvailableByKey(ctx context.Context, doctorID string, key models.DayKey) ([]models.Slot, error)

	UpdateFields(ctx context.Context, slotID string, fields map[string]interface{}) (*models.Slot, error)

	// TryBook atomically claims the slot: the update matches only when the
	// slot is available and unbooked, so concurrent bookers cannot both win.
	TryBook(ctx context.Context, slotID, bookedBy string) (*models.Slot, error)
	ClearBooking(ctx context.Context, slotID string) (*models.Slot, error)
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a new MongoDB SlotRepository.
func NewMongoSlotRepo() SlotRepository {
	repo := &mongoSlotRepo{
		coll: database.DB().Collection("slots"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Warn("Failed to ensure slot indexes", zap.Error(err))
	}
	return repo
}
