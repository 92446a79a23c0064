package handlers

import (
	"net/http"

	"clinicbook/models"
	"clinicbook/services/doctor"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler serves doctor onboarding and management.
type DoctorHandler struct {
	Service doctor.DoctorService
}

func (h *DoctorHandler) RegisterDoctorHandler(c *gin.Context) {
	var doc models.Doctor
	if err := c.ShouldBindJSON(&doc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	created, err := h.Service.Register(c.Request.Context(), doc)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to register doctor", err.Error())
		return
	}

	c.JSON(http.StatusCreated, created)
}

// SetupDefaultSlotsHandler generates the standard weekly schedule for a
// doctor and activates them.
func (h *DoctorHandler) SetupDefaultSlotsHandler(c *gin.Context) {
	doctorID := c.Param("id")

	dto, err := h.Service.SetupDefaultSlots(c.Request.Context(), doctorID)
	if err != nil {
		utils.GetLogger().Error("Failed to set up default slots",
			zap.String("doctorID", doctorID), zap.Error(err))
		utils.JSONError(c, http.StatusConflict, "Failed to set up default slots", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Default schedule generated; doctor is now active",
		"doctor":  dto,
	})
}

func (h *DoctorHandler) GetDoctorHandler(c *gin.Context) {
	doc, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Doctor not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *DoctorHandler) ListDoctorsHandler(c *gin.Context) {
	docs, err := h.Service.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list doctors", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": docs})
}

func (h *DoctorHandler) UpdateDoctorHandler(c *gin.Context) {
	var doc models.Doctor
	if err := c.ShouldBindJSON(&doc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	doc.ID = c.Param("id")

	if err := h.Service.Update(c.Request.Context(), &doc); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update doctor", err.Error())
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *DoctorHandler) DeleteDoctorHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete doctor", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctor deleted"})
}
