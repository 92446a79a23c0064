package handlers

import (
	"net/http"

	"clinicbook/middleware"
	"clinicbook/models"
	"clinicbook/services/user"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves the OTP login flow.
type AuthHandler struct {
	Service user.UserService
}

func (h *AuthHandler) InitiateOTPHandler(c *gin.Context) {
	var req models.InitiateOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	if err := h.Service.InitiateOTP(c.Request.Context(), req); err != nil {
		utils.GetLogger().Error("OTP initiation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to send verification code", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent"})
}

func (h *AuthHandler) VerifyOTPHandler(c *gin.Context) {
	var req models.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	token, account, err := h.Service.VerifyOTP(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Verification failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": account})
}

func (h *AuthHandler) MeHandler(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	account, err := h.Service.GetByID(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Account not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, account)
}
