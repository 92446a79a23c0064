// File: database/repository/slot/queries.go
package slotRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"clinicbook/models"
)

func (r *mongoSlotRepo) GetCandidatesForDate(ctx context.Context, doctorID, weekday, date string) ([]models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"doctorId": doctorID,
		"$or": []bson.M{
			{"day": weekday, "date": bson.M{"$in": []interface{}{nil, ""}}},
			{"date": date},
		},
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding slots: %w", err)
	}
	return slots, nil
}

func (r *mongoSlotRepo) GetAvailableByKey(ctx context.Context, doctorID string, key models.DayKey) ([]models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"doctorId":    doctorID,
		"isAvailable": true,
	}
	switch key.Kind {
	case models.KeyDate:
		filter["date"] = key.Date
	default:
		filter["day"] = key.Weekday
		filter["date"] = bson.M{"$in": []interface{}{nil, ""}}
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch slots for %s: %w", key, err)
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding slots: %w", err)
	}
	return slots, nil
}
