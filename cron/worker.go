package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"clinicbook/config"
	userRepo "clinicbook/database/repository/user"
	"clinicbook/models"
	"clinicbook/services/notification"
	"clinicbook/services/schedule"
	"clinicbook/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(notifSvc notification.NotificationService, users userRepo.UserRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(notifSvc, users))

	go monitorRedisConnection()

	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService, users userRepo.UserRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] Invalid payload: %v", err)
			return err
		}

		patient, err := users.GetByID(ctx, p.PatientID)
		if err != nil {
			log.Printf("[ReminderHandler] Patient %s lookup failed: %v", p.PatientID, err)
			return err
		}

		msg := fmt.Sprintf("Reminder: your appointment with Dr. %s is on %s at %s.",
			p.DoctorName, p.Date, schedule.FormatDisplay(p.StartTime))

		switch {
		case p.Channel == "whatsapp" && patient.Phone != "":
			err = notifSvc.SendWhatsApp(patient.Phone, msg)
		case patient.Email != "":
			err = notifSvc.SendEmail(patient.Email, "Appointment reminder", msg)
		case patient.Phone != "":
			err = notifSvc.SendWhatsApp(patient.Phone, msg)
		default:
			log.Printf("[ReminderHandler] Patient %s has no contact channel", p.PatientID)
			return nil
		}

		if err != nil {
			log.Printf("[ReminderHandler] Failed to send reminder for appointment %s: %v", p.AppointmentID, err)
		}
		return err
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
