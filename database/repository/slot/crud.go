// File: database/repository/slot/crud.go
package slotRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clinicbook/models"
)

func (r *mongoSlotRepo) Create(ctx context.Context, slot models.Slot) (*models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	now := time.Now()
	slot.CreatedAt = now
	slot.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

// CreateMany inserts the slots in one batch and returns their ids in input
// order. Slots carry their uuid under "id" rather than "_id", so the driver's
// InsertedIDs are generated ObjectIDs that nothing queries by; the ids the
// rest of the API can resolve are the ones assigned to the documents here.
func (r *mongoSlotRepo) CreateMany(ctx context.Context, slots []models.Slot) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	docs, ids := prepareSlotDocs(slots, time.Now())
	if _, err := r.coll.InsertMany(ctx, docs, &options.InsertManyOptions{Ordered: boolPtr(true)}); err != nil {
		return nil, err
	}
	return ids, nil
}

func prepareSlotDocs(slots []models.Slot, now time.Time) ([]interface{}, []string) {
	docs := make([]interface{}, len(slots))
	ids := make([]string, len(slots))
	for i, slot := range slots {
		if slot.ID == "" {
			slot.ID = uuid.New().String()
		}
		slot.CreatedAt = now
		slot.UpdatedAt = now
		docs[i] = slot
		ids[i] = slot.ID
	}
	return docs, ids
}

func (r *mongoSlotRepo) GetByID(ctx context.Context, slotID string) (*models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var slot models.Slot
	err := r.coll.FindOne(ctx, bson.M{"id": slotID}).Decode(&slot)
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *mongoSlotRepo) DeleteByID(ctx context.Context, slotID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": slotID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoSlotRepo) CountByDoctor(ctx context.Context, doctorID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{"doctorId": doctorID})
}

func (r *mongoSlotRepo) UpdateFields(ctx context.Context, slotID string, fields map[string]interface{}) (*models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		set[k] = v
	}

	after := options.After
	var updated models.Slot
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"id": slotID},
		bson.M{"$set": set},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func boolPtr(b bool) *bool { return &b }
