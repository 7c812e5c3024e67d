package notification

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/techentia-work/vtcc-australia/config"
	"github.com/techentia-work/vtcc-australia/models"
	"github.com/techentia-work/vtcc-australia/services/tasks"
)

// QueueNotifier implements Notifier by enqueueing email tasks for the mail
// worker instead of sending inline. Delivery stays best-effort and off the
// request path; the worker retries transient SMTP failures.
type QueueNotifier struct {
	client *asynq.Client
}

func NewQueueNotifier() *QueueNotifier {
	return &QueueNotifier{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisMailQueueDB,
		}),
	}
}

func (q *QueueNotifier) SendCustomerConfirmation(ctx context.Context, booking *models.Booking) error {
	return q.enqueue(ctx, tasks.RecipientCustomer, booking)
}

func (q *QueueNotifier) SendAdminNotification(ctx context.Context, booking *models.Booking) error {
	return q.enqueue(ctx, tasks.RecipientAdmin, booking)
}

func (q *QueueNotifier) enqueue(ctx context.Context, recipient string, booking *models.Booking) error {
	task, err := tasks.NewConfirmationEmailTask(recipient, *booking)
	if err != nil {
		return fmt.Errorf("failed to build %s email task: %w", recipient, err)
	}
	if _, err := q.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue %s email task: %w", recipient, err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (q *QueueNotifier) Close() error {
	return q.client.Close()
}
