// File: clinicbook/handlers/bundle.go
package handlers

import (
	"clinicbook/services/booking"
	"clinicbook/services/doctor"
	"clinicbook/services/schedule"
	"clinicbook/services/user"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	Auth     *AuthHandler
	Doctors  *DoctorHandler
	Slots    *SlotHandler
	Bookings *BookingHandler
}

// NewHandlerBundle wires the handlers over the given services.
func NewHandlerBundle(
	userSvc user.UserService,
	doctorSvc doctor.DoctorService,
	scheduleSvc schedule.ScheduleService,
	bookingSvc booking.BookingService,
) *HandlerBundle {
	return &HandlerBundle{
		Auth:     &AuthHandler{Service: userSvc},
		Doctors:  &DoctorHandler{Service: doctorSvc},
		Slots:    &SlotHandler{Service: scheduleSvc},
		Bookings: &BookingHandler{Service: bookingSvc},
	}
}
