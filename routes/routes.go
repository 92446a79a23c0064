package routes

import (
	"net/http"
	"time"

	"clinicbook/handlers"
	"clinicbook/middleware"
	"clinicbook/models"
	"clinicbook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the OTP login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/otp/initiate", hb.Auth.InitiateOTPHandler)
		api.POST("/otp/verify", hb.Auth.VerifyOTPHandler)

		api.GET("/me", middleware.JWTAuthMiddleware(), hb.Auth.MeHandler)
	}
}

// RegisterDoctorRoutes registers doctor listing plus availability resolution.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		// Public: browsing doctors and their open slots needs no login. The
		// availability handler treats anonymous callers as patients, so
		// admin-only slots stay hidden.
		api.GET("", hb.Doctors.ListDoctorsHandler)
		api.GET("/:id", hb.Doctors.GetDoctorHandler)
		api.GET("/:id/availability", hb.Slots.GetAvailabilityHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.GET("/:id/availability/full",
			middleware.RequireRole(models.RoleAdmin, models.RoleDoctor),
			hb.Slots.GetAvailabilityHandler)
		protected.GET("/:id/appointments",
			middleware.RequireRole(models.RoleAdmin, models.RoleDoctor),
			hb.Bookings.ListDoctorAppointmentsHandler)
	}
}

// RegisterSlotRoutes registers schedule management, admin only.
func RegisterSlotRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/slots")
	{
		api.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
		api.POST("", hb.Slots.CreateSlotHandler)
		api.PATCH("/:id", hb.Slots.UpdateSlotHandler)
		api.POST("/:id/duplicate", hb.Slots.DuplicateSlotHandler)
		api.DELETE("/:id", hb.Slots.DeleteSlotHandler)
		api.POST("/bulk", hb.Slots.BulkMutateHandler)
	}
}

// RegisterBookingRoutes registers appointment booking for patients.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Bookings.BookAppointmentHandler)
		api.GET("", hb.Bookings.ListMyAppointmentsHandler)
		api.GET("/:id", hb.Bookings.GetAppointmentHandler)
		api.DELETE("/:id", hb.Bookings.CancelAppointmentHandler)
	}
}

// RegisterAdminRoutes registers doctor management, admin only.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
		api.POST("/doctors", hb.Doctors.RegisterDoctorHandler)
		api.PUT("/doctors/:id", hb.Doctors.UpdateDoctorHandler)
		api.DELETE("/doctors/:id", hb.Doctors.DeleteDoctorHandler)
		api.POST("/doctors/:id/setup-slots", hb.Doctors.SetupDefaultSlotsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterSlotRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
