package booking

import (
	"time"

	"clinicbook/config"
	"clinicbook/models"
	"clinicbook/services/tasks"
	"clinicbook/utils"

	"go.uber.org/zap"
)

// scheduleReminder enqueues an appointment reminder to fire shortly before
// the appointment starts. Reminders are best effort; a queue failure never
// fails the booking.
func (s *DefaultBookingService) scheduleReminder(appt *models.Appointment, doc *models.Doctor) {
	if s.TaskClient == nil {
		return
	}
	logger := utils.GetLogger()

	start, err := time.ParseInLocation("2006-01-02 15:04", appt.Date+" "+appt.StartTime, time.Local)
	if err != nil {
		logger.Warn("Skipping reminder, unparseable appointment time",
			zap.String("appointmentID", appt.ID), zap.Error(err))
		return
	}

	lead := time.Duration(config.AppConfig.ReminderMinutes) * time.Minute
	fireAt := start.Add(-lead)
	if !fireAt.After(time.Now()) {
		logger.Debug("Skipping reminder, appointment too soon",
			zap.String("appointmentID", appt.ID))
		return
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		PatientID:     appt.PatientID,
		DoctorName:    doc.Name,
		Date:          appt.Date,
		StartTime:     appt.StartTime,
		Channel:       "email",
	}

	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		logger.Warn("Failed to build reminder task", zap.Error(err))
		return
	}
	if _, err := s.TaskClient.Enqueue(task, opts...); err != nil {
		logger.Warn("Failed to enqueue reminder",
			zap.String("appointmentID", appt.ID), zap.Error(err))
		return
	}

	logger.Info("Reminder scheduled",
		zap.String("appointmentID", appt.ID), zap.Time("fireAt", fireAt))
}
