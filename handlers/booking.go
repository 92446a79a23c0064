package handlers

import (
	"errors"
	"net/http"

	"clinicbook/middleware"
	"clinicbook/models"
	"clinicbook/services/booking"
	"clinicbook/services/schedule"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves appointment booking and cancellation.
type BookingHandler struct {
	Service booking.BookingService
}

func (h *BookingHandler) BookAppointmentHandler(c *gin.Context) {
	patientID := c.GetString(middleware.CtxUserID)
	if patientID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	var req models.BookSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	appt, err := h.Service.BookAppointment(c.Request.Context(), patientID, req)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, appt)
}

func (h *BookingHandler) CancelAppointmentHandler(c *gin.Context) {
	requesterID := c.GetString(middleware.CtxUserID)
	role := middleware.RoleFromContext(c)

	appt, err := h.Service.CancelAppointment(c.Request.Context(), c.Param("id"), requesterID, role)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to cancel appointment", err.Error())
		return
	}

	c.JSON(http.StatusOK, appt)
}

func (h *BookingHandler) GetAppointmentHandler(c *gin.Context) {
	appt, err := h.Service.GetAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Appointment not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ListMyAppointmentsHandler returns the authenticated patient's bookings.
func (h *BookingHandler) ListMyAppointmentsHandler(c *gin.Context) {
	patientID := c.GetString(middleware.CtxUserID)
	appts, err := h.Service.ListByPatient(c.Request.Context(), patientID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// ListDoctorAppointmentsHandler returns a doctor's bookings for one date.
func (h *BookingHandler) ListDoctorAppointmentsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing date query parameter", nil)
		return
	}

	appts, err := h.Service.ListByDoctorAndDate(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

func writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, schedule.ErrSlotNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, schedule.ErrSlotAlreadyBooked), errors.Is(err, schedule.ErrSlotUnavailable):
		utils.JSONError(c, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, schedule.ErrInvalidDateInput):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), nil)
	default:
		utils.GetLogger().Error("Booking failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Booking failed", err.Error())
	}
}
