// File: clinicbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicbook/config"
	"clinicbook/cron"
	"clinicbook/database"
	appointmentRepoPkg "clinicbook/database/repository/appointment"
	doctorRepoPkg "clinicbook/database/repository/doctor"
	slotRepoPkg "clinicbook/database/repository/slot"
	userRepoPkg "clinicbook/database/repository/user"
	"clinicbook/handlers"
	"clinicbook/middleware"
	"clinicbook/routes"
	"clinicbook/services/booking"
	"clinicbook/services/doctor"
	"clinicbook/services/notification"
	"clinicbook/services/schedule"
	"clinicbook/services/user"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.InitOTPCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	slotRepo := slotRepoPkg.NewMongoSlotRepo()
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	notificationService := &notification.DefaultNotificationService{
		Email:    notification.NewSendgridEmailSender(),
		WhatsApp: notification.NewHTTPWhatsAppSender(),
	}

	userService := &user.DefaultUserService{
		Repo:         userRepo,
		Notification: notificationService,
	}

	scheduleService := &schedule.DefaultScheduleService{
		Repo: slotRepo,
	}

	template := schedule.DefaultTemplateConfig()
	if days, err := schedule.ParseWeekdays(config.AppConfig.WorkingDays); err != nil {
		logger.Sugar().Fatalf("main: invalid WORKING_DAYS config: %v", err)
	} else if len(days) > 0 {
		template.WorkingDays = days
	}
	if config.AppConfig.SlotMinutes > 0 {
		template.SlotMinutes = config.AppConfig.SlotMinutes
	}

	doctorService := &doctor.DefaultDoctorService{
		Repo:     doctorRepo,
		Slots:    slotRepo,
		Template: template,
	}

	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer taskClient.Close()

	bookingService := &booking.DefaultBookingService{
		Appointments: appointmentRepo,
		Doctors:      doctorRepo,
		Users:        userRepo,
		Schedule:     scheduleService,
		Payments:     booking.NewPaymentHandler(logger),
		Notifier:     notificationService,
		TaskClient:   taskClient,
	}

	// Background reminder worker and service health monitor.
	cron.InitReminderWorker(notificationService, userRepo)
	utils.StartHealthMonitor(
		map[string]*redis.Client{
			"cache": utils.GetCacheClient(),
			"auth":  utils.GetAuthCacheClient(),
			"otp":   utils.GetOTPCacheClient(),
		},
		database.MongoClient,
	)

	handlerBundle := handlers.NewHandlerBundle(userService, doctorService, scheduleService, bookingService)
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
