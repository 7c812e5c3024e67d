package booking

import (
	"context"

	"github.com/techentia-work/vtcc-australia/models"
)

// Service is the booking engine surface consumed by the HTTP handlers.
type Service interface {
	// CheckAvailability is the soft pre-check exposed to clients. The same
	// check is repeated under the slot lock at commit time.
	CheckAvailability(ctx context.Context, req models.AvailabilityRequest) (*models.AvailabilityResult, error)
	// AvailableSlots lists the free hourly starting points for a date.
	AvailableSlots(ctx context.Context, req models.SlotsRequest) ([]models.TimeOfDay, error)
	// CreateWithAdvance validates, prices, reserves and persists a booking,
	// opening a payment order for the deposit.
	CreateWithAdvance(ctx context.Context, req *models.BookingRequest) (*models.Booking, *models.PaymentOrder, error)
	// RetryOrder opens a fresh payment order for a pending booking whose
	// earlier order creation failed or expired.
	RetryOrder(ctx context.Context, bookingID string) (*models.Booking, *models.PaymentOrder, error)
	// ConfirmPayment verifies the gateway callback and moves the booking to
	// advance_paid.
	ConfirmPayment(ctx context.Context, verification models.PaymentVerification) (*models.Booking, models.EmailStatus, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	Stats(ctx context.Context) (*models.BookingStats, error)
}
