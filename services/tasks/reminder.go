package tasks

import (
	"encoding/json"
	"time"

	"clinicbook/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask builds the asynq task that fires an appointment reminder at
// the given time. A reminder is worthless once the visit has started, so the
// task carries a short retry budget rather than asynq's default of 25.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.MaxRetry(3),
		asynq.Timeout(30 * time.Second),
	}

	return task, opts, nil
}
