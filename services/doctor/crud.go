package doctor

import (
	"context"
	"fmt"
	"strings"

	"clinicbook/models"
	"clinicbook/utils"

	"go.uber.org/zap"
)

// Register creates a doctor record in "pending" status. Slots are generated
// separately via SetupDefaultSlots so a half-onboarded doctor never appears
// bookable.
func (s *DefaultDoctorService) Register(ctx context.Context, doc models.Doctor) (*models.Doctor, error) {
	doc.Email = strings.ToLower(strings.TrimSpace(doc.Email))
	if doc.Name == "" || doc.Email == "" {
		return nil, fmt.Errorf("doctor name and email are required")
	}
	if existing, err := s.Repo.GetByEmail(ctx, doc.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("doctor with email %s already exists", doc.Email)
	}

	created, err := s.Repo.Create(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to register doctor: %w", err)
	}

	utils.GetLogger().Info("Doctor registered",
		zap.String("doctorID", created.ID), zap.String("email", created.Email))
	return created, nil
}

func (s *DefaultDoctorService) GetByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	return s.Repo.GetByID(ctx, doctorID)
}

func (s *DefaultDoctorService) List(ctx context.Context) ([]models.Doctor, error) {
	return s.Repo.List(ctx)
}

func (s *DefaultDoctorService) Update(ctx context.Context, doc *models.Doctor) error {
	if doc.ID == "" {
		return fmt.Errorf("doctor id is required")
	}
	return s.Repo.Update(ctx, doc)
}

func (s *DefaultDoctorService) Delete(ctx context.Context, doctorID string) error {
	if err := s.Repo.Delete(ctx, doctorID); err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}
	utils.GetLogger().Info("Doctor deleted", zap.String("doctorID", doctorID))
	return nil
}
