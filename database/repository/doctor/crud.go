// File: database/repository/doctor/crud.go
package doctorRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"clinicbook/models"
)

func (r *mongoDoctorRepo) Create(ctx context.Context, doc models.Doctor) (*models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if doc.Status == "" {
		doc.Status = "pending"
	}
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}
	return &doc, nil
}

func (r *mongoDoctorRepo) GetByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc models.Doctor
	if err := r.coll.FindOne(ctx, bson.M{"id": doctorID}).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *mongoDoctorRepo) GetByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc models.Doctor
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *mongoDoctorRepo) List(ctx context.Context) ([]models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []models.Doctor
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding doctors: %w", err)
	}
	return docs, nil
}

func (r *mongoDoctorRepo) Update(ctx context.Context, doc *models.Doctor) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": doc.ID}, doc)
	if err != nil {
		return fmt.Errorf("failed to update doctor: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoDoctorRepo) Delete(ctx context.Context, doctorID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": doctorID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
