package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"github.com/techentia-work/vtcc-australia/config"
	"github.com/techentia-work/vtcc-australia/services/notification"
	"github.com/techentia-work/vtcc-australia/services/tasks"
)

// InitMailWorker runs the async email worker in background.
func InitMailWorker(mailer notification.Notifier) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
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
	mux.HandleFunc(tasks.TypeConfirmationEmail, handleConfirmationEmail(mailer))

	// Start async worker with retry logic
	go func() {
		log.Println("[MailWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[MailWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[MailWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleConfirmationEmail(mailer notification.Notifier) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.ConfirmationEmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[MailWorker] Invalid payload: %v", err)
			return err
		}

		switch p.Recipient {
		case tasks.RecipientAdmin:
			return mailer.SendAdminNotification(ctx, &p.Booking)
		default:
			return mailer.SendCustomerConfirmation(ctx, &p.Booking)
		}
	}
}
