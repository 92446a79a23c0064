package booking

import (
	"context"
	"fmt"
	"time"

	"clinicbook/models"
	"clinicbook/services/schedule"
	"clinicbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultCurrency = "usd"

// BookAppointment runs the full booking flow. The slot claim is the atomic
// step: everything after it either completes or releases the slot again, so a
// failed payment never leaves a slot stuck in the booked state.
func (s *DefaultBookingService) BookAppointment(ctx context.Context, patientID string, req models.BookSlotRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	doc, err := s.Doctors.GetByID(ctx, req.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("doctor not found: %w", err)
	}
	if doc.Status != "active" {
		return nil, fmt.Errorf("doctor %s is not accepting appointments", doc.ID)
	}

	// Claim the slot first. This is a conditional update, so two patients
	// racing for the same slot resolve here: one wins, the other gets
	// ErrSlotAlreadyBooked.
	slot, err := s.Schedule.Book(ctx, req.SlotID, patientID)
	if err != nil {
		return nil, err
	}

	if slot.DoctorID != req.DoctorID {
		s.releaseSlot(slot.ID)
		return nil, fmt.Errorf("slot %s does not belong to doctor %s", slot.ID, req.DoctorID)
	}
	if err := validateSlotDate(slot, req.Date); err != nil {
		s.releaseSlot(slot.ID)
		return nil, err
	}

	amount := req.Amount
	if amount <= 0 {
		amount = doc.Fee
	}
	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	invoice, err := s.Payments.ProcessPayment(ctx, models.PaymentRequest{
		UserID:   patientID,
		Amount:   amount,
		Currency: currency,
		Method:   req.Method,
	})
	if err != nil {
		s.releaseSlot(slot.ID)
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	now := time.Now()
	appt := models.Appointment{
		ID:        uuid.New().String(),
		PatientID: patientID,
		DoctorID:  doc.ID,
		SlotID:    slot.ID,
		Date:      req.Date,
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		Status:    models.AppointmentPending,
		Reason:    req.Reason,
		Invoice:   invoice,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if invoice.Status == "paid" {
		appt.Status = models.AppointmentConfirmed
	}

	created, err := s.Appointments.Create(ctx, appt)
	if err != nil {
		s.releaseSlot(slot.ID)
		return nil, fmt.Errorf("failed to save appointment: %w", err)
	}

	s.scheduleReminder(created, doc)
	s.notifyPatient(ctx, created, doc)

	logger.Info("Appointment booked",
		zap.String("appointmentID", created.ID),
		zap.String("doctorID", doc.ID),
		zap.String("slotID", slot.ID),
		zap.String("date", created.Date))
	return created, nil
}

func (s *DefaultBookingService) GetAppointment(ctx context.Context, apptID string) (*models.Appointment, error) {
	return s.Appointments.GetByID(ctx, apptID)
}

func (s *DefaultBookingService) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return s.Appointments.GetByPatient(ctx, patientID)
}

func (s *DefaultBookingService) ListByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	return s.Appointments.GetByDoctorAndDate(ctx, doctorID, date)
}

// releaseSlot undoes a claimed slot after a downstream failure. It runs on a
// fresh context because the request context may already be cancelled.
func (s *DefaultBookingService) releaseSlot(slotID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := s.Schedule.CancelBooking(ctx, slotID); err != nil {
		utils.GetLogger().Error("Failed to release slot after booking failure",
			zap.String("slotID", slotID), zap.Error(err))
	}
}

// validateSlotDate checks that the requested date actually matches the slot:
// a date-specific slot must match exactly, a weekly slot must fall on its
// weekday.
func validateSlotDate(slot *models.Slot, date string) error {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return schedule.ErrInvalidDateInput
	}
	if slot.Date != "" {
		if slot.Date != date {
			return fmt.Errorf("slot %s is scheduled for %s, not %s", slot.ID, slot.Date, date)
		}
		return nil
	}
	if parsed.Weekday().String() != slot.Day {
		return fmt.Errorf("slot %s runs on %s, but %s is a %s", slot.ID, slot.Day, date, parsed.Weekday())
	}
	return nil
}

func (s *DefaultBookingService) notifyPatient(ctx context.Context, appt *models.Appointment, doc *models.Doctor) {
	if s.Notifier == nil {
		return
	}
	patient, err := s.Users.GetByID(ctx, appt.PatientID)
	if err != nil {
		utils.GetLogger().Warn("Skipping booking notification, patient lookup failed",
			zap.String("patientID", appt.PatientID), zap.Error(err))
		return
	}

	msg := fmt.Sprintf("Your appointment with Dr. %s on %s at %s is %s.",
		doc.Name, appt.Date, schedule.FormatDisplay(appt.StartTime), appt.Status)
	if patient.Email != "" {
		if err := s.Notifier.SendEmail(patient.Email, "Appointment "+appt.Status, msg); err != nil {
			utils.GetLogger().Warn("Booking email failed", zap.Error(err))
		}
		return
	}
	if patient.Phone != "" {
		if err := s.Notifier.SendWhatsApp(patient.Phone, msg); err != nil {
			utils.GetLogger().Warn("Booking WhatsApp message failed", zap.Error(err))
		}
	}
}
