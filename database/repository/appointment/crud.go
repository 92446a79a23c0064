// File: database/repository/appointment/crud.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clinicbook/models"
)

func (r *mongoAppointmentRepo) Create(ctx context.Context, appt models.Appointment) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	if appt.Status == "" {
		appt.Status = models.AppointmentPending
	}
	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return &appt, nil
}

func (r *mongoAppointmentRepo) GetByID(ctx context.Context, apptID string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": apptID}).Decode(&appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

func (r *mongoAppointmentRepo) GetByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "startTime", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"patientId": patientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}

func (r *mongoAppointmentRepo) GetByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"doctorId": doctorID, "date": date}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}

func (r *mongoAppointmentRepo) UpdateStatus(ctx context.Context, apptID, status string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	after := options.After
	var updated models.Appointment
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"id": apptID},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *mongoAppointmentRepo) Delete(ctx context.Context, apptID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": apptID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
