package notification

import (
	"context"

	"github.com/techentia-work/vtcc-australia/models"
)

// Notifier sends booking confirmations. Both sends are best-effort: the
// booking lifecycle reports their outcome but never fails a state transition
// over them.
type Notifier interface {
	SendCustomerConfirmation(ctx context.Context, booking *models.Booking) error
	SendAdminNotification(ctx context.Context, booking *models.Booking) error
}
