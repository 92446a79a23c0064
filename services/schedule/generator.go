package schedule

import (
	"fmt"
	"time"

	"clinicbook/models"
)

// Window is one daily stretch of consecutive slots in a schedule template.
type Window struct {
	Start     string // "HH:MM"
	End       string // "HH:MM", must be after Start; no overnight wrap
	AdminOnly bool
}

// TemplateConfig drives default slot generation for a newly onboarded doctor.
// The working-day set is deliberately an input rather than a constant so the
// clinic can change its week without a code change.
type TemplateConfig struct {
	WorkingDays []time.Weekday
	Windows     []Window
	SlotMinutes int
}

// DefaultTemplateConfig is the clinic's standard week: Thursday and Sunday
// off, an early admin-reserved stretch for staff bookings, and a 13:00-14:00
// lunch break that simply has no window.
func DefaultTemplateConfig() TemplateConfig {
	return TemplateConfig{
		WorkingDays: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Friday, time.Saturday,
		},
		Windows: []Window{
			{Start: "06:30", End: "09:00", AdminOnly: true},
			{Start: "09:00", End: "13:00"},
			{Start: "14:00", End: "19:00"},
		},
		SlotMinutes: 15,
	}
}

// ParseWeekdays converts weekday names to time.Weekday values, e.g. for
// building a template from configuration.
func ParseWeekdays(names []string) ([]time.Weekday, error) {
	byName := map[string]time.Weekday{}
	for d := time.Sunday; d <= time.Saturday; d++ {
		byName[d.String()] = d
	}
	days := make([]time.Weekday, 0, len(names))
	for _, name := range names {
		d, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
		days = append(days, d)
	}
	return days, nil
}

// GenerateDefaultSlots produces the standard weekly template set for a doctor.
func GenerateDefaultSlots(doctorID string) ([]models.Slot, error) {
	return GenerateSlots(doctorID, DefaultTemplateConfig())
}

// GenerateSlots expands a template config into weekly slot records, one per
// increment per window per working day, ordered by day then start time. The
// slots are not persisted and no existing-slot check happens here; the
// onboarding flow guards against regeneration.
func GenerateSlots(doctorID string, cfg TemplateConfig) ([]models.Slot, error) {
	if doctorID == "" {
		return nil, fmt.Errorf("doctorID is required")
	}
	if cfg.SlotMinutes <= 0 {
		return nil, fmt.Errorf("slot duration must be positive, got %d", cfg.SlotMinutes)
	}

	// Validate windows up front so a bad config produces no partial output.
	type span struct{ start, end int }
	spans := make([]span, len(cfg.Windows))
	for i, w := range cfg.Windows {
		start, err := ToMinutes(w.Start)
		if err != nil {
			return nil, fmt.Errorf("window %d: %w", i+1, err)
		}
		end, err := ToMinutes(w.End)
		if err != nil {
			return nil, fmt.Errorf("window %d: %w", i+1, err)
		}
		if end <= start {
			return nil, fmt.Errorf("window %d: end %s must be after start %s", i+1, w.End, w.Start)
		}
		spans[i] = span{start, end}
	}

	var slots []models.Slot
	for _, day := range cfg.WorkingDays {
		for i, w := range cfg.Windows {
			for t := spans[i].start; t+cfg.SlotMinutes <= spans[i].end; t += cfg.SlotMinutes {
				slots = append(slots, models.Slot{
					DoctorID:    doctorID,
					Day:         day.String(),
					StartTime:   FromMinutes(t),
					EndTime:     FromMinutes(t + cfg.SlotMinutes),
					Duration:    cfg.SlotMinutes,
					IsAvailable: true,
					IsAdminOnly: w.AdminOnly,
				})
			}
		}
	}
	return slots, nil
}
