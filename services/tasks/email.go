package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"github.com/techentia-work/vtcc-australia/models"
)

const TypeConfirmationEmail = "email:confirmation"

// Recipients for a confirmation email task.
const (
	RecipientCustomer = "customer"
	RecipientAdmin    = "admin"
)

// ConfirmationEmailPayload carries the booking snapshot to the mail worker so
// delivery does not depend on re-reading the booking store.
type ConfirmationEmailPayload struct {
	Recipient string         `json:"recipient"`
	Booking   models.Booking `json:"booking"`
}

func NewConfirmationEmailTask(recipient string, booking models.Booking) (*asynq.Task, error) {
	b, err := json.Marshal(ConfirmationEmailPayload{Recipient: recipient, Booking: booking})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeConfirmationEmail, b, asynq.MaxRetry(3)), nil
}
