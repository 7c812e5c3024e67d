package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/techentia-work/vtcc-australia/models"
)

// RazorpayGateway implements Gateway over the Razorpay orders API.
type RazorpayGateway struct {
	client    *razorpay.Client
	keySecret string
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{
		client:    razorpay.NewClient(keyID, keySecret),
		keySecret: keySecret,
	}
}

// CreateOrder opens a Razorpay order. Razorpay works in minor units, so the
// amount is multiplied by 100 on the way out and divided on the way back.
func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount int64, currency, note string) (*models.PaymentOrder, error) {
	data := map[string]interface{}{
		"amount":   amount * 100,
		"currency": currency,
		"receipt":  fmt.Sprintf("receipt_%d", time.Now().UnixMilli()),
	}
	if note != "" {
		data["notes"] = map[string]interface{}{"description": note}
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order creation failed: %w", err)
	}
	return orderFromResponse(body), nil
}

// VerifySignature recomputes the checkout signature, HMAC-SHA256 over
// "orderID|paymentID" with the key secret, and compares in constant time.
func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (g *RazorpayGateway) FetchOrder(ctx context.Context, orderID string) (*models.PaymentOrder, error) {
	body, err := g.client.Order.Fetch(orderID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order fetch failed: %w", err)
	}
	return orderFromResponse(body), nil
}

func (g *RazorpayGateway) FetchPayment(ctx context.Context, paymentID string) (map[string]interface{}, error) {
	body, err := g.client.Payment.Fetch(paymentID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay payment fetch failed: %w", err)
	}
	return body, nil
}

func orderFromResponse(body map[string]interface{}) *models.PaymentOrder {
	order := &models.PaymentOrder{}
	if id, ok := body["id"].(string); ok {
		order.ID = id
	}
	if amount, ok := body["amount"].(float64); ok {
		order.Amount = int64(amount)
	}
	if currency, ok := body["currency"].(string); ok {
		order.Currency = currency
	}
	if receipt, ok := body["receipt"].(string); ok {
		order.Receipt = receipt
	}
	if status, ok := body["status"].(string); ok {
		order.Status = status
	}
	return order
}
