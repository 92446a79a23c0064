package doctor

import (
	"context"

	doctorRepo "clinicbook/database/repository/doctor"
	slotRepo "clinicbook/database/repository/slot"
	"clinicbook/models"
	"clinicbook/services/schedule"
)

// DoctorService manages clinician records and their schedule onboarding.
type DoctorService interface {
	Register(ctx context.Context, doc models.Doctor) (*models.Doctor, error)
	GetByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	List(ctx context.Context) ([]models.Doctor, error)
	Update(ctx context.Context, doc *models.Doctor) error
	Delete(ctx context.Context, doctorID string) error

	// SetupDefaultSlots generates and persists the standard weekly template
	// set. It refuses to run for a doctor who already has slots.
	SetupDefaultSlots(ctx context.Context, doctorID string) (*models.DoctorSlotsDTO, error)
}

// DefaultDoctorService is the production implementation.
type DefaultDoctorService struct {
	Repo     doctorRepo.DoctorRepository
	Slots    slotRepo.SlotRepository
	Template schedule.TemplateConfig
}
