// File: database/repository/doctor/interface.go
package doctorRepo

import (
	"context"

	"clinicbook/database"
	"clinicbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type DoctorRepository interface {
	Create(ctx context.Context, doc models.Doctor) (*models.Doctor, error)
	GetByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	GetByEmail(ctx context.Context, email string) (*models.Doctor, error)
	List(ctx context.Context) ([]models.Doctor, error)
	Update(ctx context.Context, doc *models.Doctor) error
	Delete(ctx context.Context, doctorID string) error
}

type mongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo constructs a new MongoDB DoctorRepository.
func NewMongoDoctorRepo() DoctorRepository {
	return &mongoDoctorRepo{
		coll: database.DB().Collection("doctors"),
	}
}
