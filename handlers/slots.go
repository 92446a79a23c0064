package handlers

import (
	"errors"
	"net/http"

	"clinicbook/middleware"
	"clinicbook/models"
	"clinicbook/services/schedule"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SlotHandler serves availability resolution and slot management.
type SlotHandler struct {
	Service schedule.ScheduleService
}

// GetAvailabilityHandler resolves a doctor's open slots for one date. The
// caller's role decides whether admin-only slots are included.
func (h *SlotHandler) GetAvailabilityHandler(c *gin.Context) {
	doctorID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing date query parameter", nil)
		return
	}

	role := middleware.RoleFromContext(c)
	slots, err := h.Service.ResolveAvailability(c.Request.Context(), doctorID, date, role)
	if err != nil {
		writeScheduleError(c, err, "Failed to resolve availability")
		return
	}

	c.JSON(http.StatusOK, gin.H{"doctorId": doctorID, "date": date, "slots": slots})
}

func (h *SlotHandler) CreateSlotHandler(c *gin.Context) {
	var req models.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	slot, err := h.Service.CreateSlot(c.Request.Context(), req)
	if err != nil {
		writeScheduleError(c, err, "Failed to create slot")
		return
	}

	c.JSON(http.StatusCreated, slot)
}

func (h *SlotHandler) UpdateSlotHandler(c *gin.Context) {
	slotID := c.Param("id")
	var req models.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	slot, err := h.Service.UpdateSlot(c.Request.Context(), slotID, req)
	if err != nil {
		writeScheduleError(c, err, "Failed to update slot")
		return
	}

	c.JSON(http.StatusOK, slot)
}

// DuplicateSlotHandler copies a slot onto another weekday or date.
func (h *SlotHandler) DuplicateSlotHandler(c *gin.Context) {
	slotID := c.Param("id")
	var body struct {
		Day  string `json:"day,omitempty"`
		Date string `json:"date,omitempty"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	var key models.DayKey
	switch {
	case body.Date != "":
		key = models.DateKey(body.Date)
	case body.Day != "":
		key = models.WeekdayKey(body.Day)
	default:
		utils.JSONError(c, http.StatusBadRequest, "Either day or date is required", nil)
		return
	}

	slot, err := h.Service.DuplicateSlot(c.Request.Context(), slotID, key)
	if err != nil {
		writeScheduleError(c, err, "Failed to duplicate slot")
		return
	}

	c.JSON(http.StatusCreated, slot)
}

func (h *SlotHandler) DeleteSlotHandler(c *gin.Context) {
	slotID := c.Param("id")
	if err := h.Service.DeleteSlot(c.Request.Context(), slotID); err != nil {
		writeScheduleError(c, err, "Failed to delete slot")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Slot deleted"})
}

// BulkMutateHandler applies one action to many slots. Partial failure is
// normal: the response carries a per-id result list, not a single status.
func (h *SlotHandler) BulkMutateHandler(c *gin.Context) {
	var req models.BulkMutateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	results := h.Service.BulkMutate(c.Request.Context(), req.SlotIDs, req.Action)
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// writeScheduleError maps scheduling errors onto HTTP statuses. Conflicts
// return the conflicting slot in the details payload.
func writeScheduleError(c *gin.Context, err error, message string) {
	var conflict *schedule.ConflictError
	switch {
	case errors.As(err, &conflict):
		utils.JSONError(c, http.StatusConflict, err.Error(), gin.H{"conflictingSlot": conflict.Conflicting})
	case errors.Is(err, schedule.ErrSlotNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, schedule.ErrInvalidTimeFormat), errors.Is(err, schedule.ErrInvalidDateInput):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, schedule.ErrSlotUnavailable), errors.Is(err, schedule.ErrSlotAlreadyBooked):
		utils.JSONError(c, http.StatusConflict, err.Error(), nil)
	default:
		utils.GetLogger().Error(message, zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, message, err.Error())
	}
}
