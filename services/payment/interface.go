package payment

import (
	"context"

	"github.com/techentia-work/vtcc-australia/models"
)

// Gateway abstracts the payment collaborator: order creation for the deposit,
// signature verification of the checkout callback, and detail lookups.
type Gateway interface {
	// CreateOrder opens an order for the given amount in major currency units.
	CreateOrder(ctx context.Context, amount int64, currency, note string) (*models.PaymentOrder, error)
	// VerifySignature checks the checkout callback signature for an order and
	// payment pair.
	VerifySignature(orderID, paymentID, signature string) bool
	FetchOrder(ctx context.Context, orderID string) (*models.PaymentOrder, error)
	FetchPayment(ctx context.Context, paymentID string) (map[string]interface{}, error)
}
