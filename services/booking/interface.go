package booking

import (
	"context"

	appointmentRepo "clinicbook/database/repository/appointment"
	doctorRepo "clinicbook/database/repository/doctor"
	userRepo "clinicbook/database/repository/user"
	"clinicbook/models"
	"clinicbook/services/notification"
	"clinicbook/services/schedule"

	"github.com/hibiken/asynq"
)

// BookingService orchestrates the full booking flow: claiming the slot,
// creating the appointment, collecting payment and scheduling reminders.
type BookingService interface {
	BookAppointment(ctx context.Context, patientID string, req models.BookSlotRequest) (*models.Appointment, error)
	CancelAppointment(ctx context.Context, apptID, requesterID string, requesterRole models.Role) (*models.Appointment, error)
	GetAppointment(ctx context.Context, apptID string) (*models.Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	ListByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Appointments appointmentRepo.AppointmentRepository
	Doctors      doctorRepo.DoctorRepository
	Users        userRepo.UserRepository
	Schedule     schedule.ScheduleService
	Payments     PaymentHandler
	Notifier     notification.NotificationService
	TaskClient   *asynq.Client
}
