// FILE: database/repository/slot/indexes.go
package slotRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the slots collection.
func (r *mongoSlotRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on slot ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Weekly template lookups
		{
			Keys:    bson.D{{Key: "doctorId", Value: 1}, {Key: "day", Value: 1}},
			Options: options.Index().SetName("doctor_day_idx"),
		},
		// Date-specific lookups
		{
			Keys:    bson.D{{Key: "doctorId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("doctor_date_idx"),
		},
		{
			Keys:    bson.D{{Key: "doctorId", Value: 1}, {Key: "isAvailable", Value: 1}},
			Options: options.Index().SetName("doctor_available_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create slot indexes: %w", err)
	}
	return nil
}
