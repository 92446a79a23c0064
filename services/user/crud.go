package user

import (
	"context"

	"clinicbook/models"
)

func (s *DefaultUserService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	return s.Repo.GetByID(ctx, userID)
}

func (s *DefaultUserService) Update(ctx context.Context, user *models.User) error {
	return s.Repo.Update(ctx, user)
}

func (s *DefaultUserService) List(ctx context.Context) ([]models.User, error) {
	return s.Repo.List(ctx)
}
