package doctor

import (
	"context"
	"fmt"

	"clinicbook/models"
	"clinicbook/services/schedule"
	"clinicbook/utils"

	"go.uber.org/zap"
)

// SetupDefaultSlots expands the clinic's weekly template for the doctor,
// bulk-inserts the slots and flips the doctor to active. The generator itself
// never checks for pre-existing slots, so the guard lives here: a doctor with
// any slots at all must use the manual editor instead of regenerating.
func (s *DefaultDoctorService) SetupDefaultSlots(ctx context.Context, doctorID string) (*models.DoctorSlotsDTO, error) {
	doc, err := s.Repo.GetByID(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("doctor not found: %w", err)
	}

	count, err := s.Slots.CountByDoctor(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing slots: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("doctor %s already has %d slots; delete them before regenerating", doctorID, count)
	}

	slots, err := schedule.GenerateSlots(doctorID, s.template())
	if err != nil {
		return nil, fmt.Errorf("failed to generate slots: %w", err)
	}

	ids, err := s.Slots.CreateMany(ctx, slots)
	if err != nil {
		return nil, fmt.Errorf("failed to create slots: %w", err)
	}
	for i := range slots {
		slots[i].ID = ids[i]
	}

	doc.Status = "active"
	if err := s.Repo.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to activate doctor: %w", err)
	}

	utils.GetLogger().Info("Default slots generated",
		zap.String("doctorID", doctorID), zap.Int("count", len(slots)))

	return &models.DoctorSlotsDTO{
		ID:     doc.ID,
		Status: doc.Status,
		Slots:  slots,
	}, nil
}

func (s *DefaultDoctorService) template() schedule.TemplateConfig {
	if len(s.Template.WorkingDays) == 0 {
		return schedule.DefaultTemplateConfig()
	}
	return s.Template
}
