package booking

import (
	"context"
	"fmt"

	"clinicbook/models"
	"clinicbook/utils"

	"go.uber.org/zap"
)

// CancelAppointment marks the appointment cancelled and frees its slot.
// Patients may cancel only their own appointments; admins may cancel any.
func (s *DefaultBookingService) CancelAppointment(ctx context.Context, apptID, requesterID string, requesterRole models.Role) (*models.Appointment, error) {
	appt, err := s.Appointments.GetByID(ctx, apptID)
	if err != nil {
		return nil, fmt.Errorf("appointment not found: %w", err)
	}
	if requesterRole != models.RoleAdmin && appt.PatientID != requesterID {
		return nil, fmt.Errorf("appointment %s does not belong to the requester", apptID)
	}
	if appt.Status == models.AppointmentCancelled {
		return appt, nil
	}
	if appt.Status == models.AppointmentCompleted {
		return nil, fmt.Errorf("appointment %s is already completed", apptID)
	}

	updated, err := s.Appointments.UpdateStatus(ctx, apptID, models.AppointmentCancelled)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel appointment: %w", err)
	}

	// Free the slot so someone else can take it. Losing this update only
	// costs an open slot, so a failure is logged rather than surfaced.
	if _, err := s.Schedule.CancelBooking(ctx, appt.SlotID); err != nil {
		utils.GetLogger().Error("Failed to free slot on cancellation",
			zap.String("slotID", appt.SlotID), zap.Error(err))
	}

	utils.GetLogger().Info("Appointment cancelled",
		zap.String("appointmentID", apptID), zap.String("by", requesterID))
	return updated, nil
}
