package user

import (
	"context"

	userRepo "clinicbook/database/repository/user"
	"clinicbook/models"
	"clinicbook/services/notification"
)

// UserService handles OTP login and account management for patients and
// admins. There are no passwords; the contact channel is the identity.
type UserService interface {
	InitiateOTP(ctx context.Context, req models.InitiateOTPRequest) error
	VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) (string, *models.User, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo         userRepo.UserRepository
	Notification notification.NotificationService
}
