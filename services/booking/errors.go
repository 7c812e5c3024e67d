package booking

import (
	"fmt"
	"strings"

	"github.com/techentia-work/vtcc-australia/models"
)

// ValidationError carries every rule violation found in a booking request.
// Requests are never partially accepted.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("booking validation failed: %s", strings.Join(e.Errors, ", "))
}

// UnknownCategoryError rejects pricing for an event type with no plan.
type UnknownCategoryError struct {
	Category string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown event type: %s", e.Category)
}

// UpstreamUnavailableError wraps a failure to reach the booking store or the
// payment gateway. These are retryable from the caller's point of view.
type UpstreamUnavailableError struct {
	Op  string
	Err error
}

func (e *UpstreamUnavailableError) Error() string {
	return fmt.Sprintf("%s: upstream unavailable: %v", e.Op, e.Err)
}

func (e *UpstreamUnavailableError) Unwrap() error { return e.Err }

// SignatureMismatchError means the payment callback failed verification.
// The booking stays unpaid and the client must retry payment.
type SignatureMismatchError struct {
	OrderID string
}

func (e *SignatureMismatchError) Error() string {
	return fmt.Sprintf("payment signature verification failed for order %s", e.OrderID)
}

// SlotConflictError is returned when the commit-time availability re-check
// finds overlapping bookings.
type SlotConflictError struct {
	Conflicts []models.Booking
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("requested slot conflicts with %d existing booking(s)", len(e.Conflicts))
}
