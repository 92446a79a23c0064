// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"

	"clinicbook/database"
	"clinicbook/models"
	"clinicbook/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appt models.Appointment) (*models.Appointment, error)
	GetByID(ctx context.Context, apptID string) (*models.Appointment, error)
	GetByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	GetByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, apptID, status string) (*models.Appointment, error)
	Delete(ctx context.Context, apptID string) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	repo := &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Warn("Failed to ensure appointment indexes", zap.Error(err))
	}
	return repo
}
