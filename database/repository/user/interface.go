// File: database/repository/user/interface.go
package userRepo

import (
	"context"

	"clinicbook/database"
	"clinicbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository interface {
	Create(ctx context.Context, user models.User) (*models.User, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByPhone(ctx context.Context, phone string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]models.User, error)
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a new MongoDB UserRepository.
func NewMongoUserRepo() UserRepository {
	return &mongoUserRepo{
		coll: database.DB().Collection("users"),
	}
}
