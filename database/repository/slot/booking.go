// File: database/repository/slot/booking.go
package slotRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clinicbook/models"
)

// TryBook performs the booking transition as one conditional update. The
// filter only matches an available, unbooked slot, so of two racing callers
// exactly one sees a matched document; the loser gets mongo.ErrNoDocuments
// and the scheduling core turns that into the right typed error.
func (r *mongoSlotRepo) TryBook(ctx context.Context, slotID, bookedBy string) (*models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":          slotID,
		"isAvailable": true,
		"$or": []bson.M{
			{"bookedBy": bson.M{"$exists": false}},
			{"bookedBy": ""},
		},
	}
	update := bson.M{
		"$set": bson.M{
			"bookedBy":  bookedBy,
			"updatedAt": time.Now(),
		},
	}

	after := options.After
	var updated models.Slot
	err := r.coll.FindOneAndUpdate(ctx, filter, update,
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *mongoSlotRepo) ClearBooking(ctx context.Context, slotID string) (*models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$unset": bson.M{"bookedBy": ""},
		"$set":   bson.M{"updatedAt": time.Now()},
	}

	after := options.After
	var updated models.Slot
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": slotID}, update,
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
