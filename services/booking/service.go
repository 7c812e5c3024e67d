package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/techentia-work/vtcc-australia/config"
	bookingRepo "github.com/techentia-work/vtcc-australia/database/repository/booking"
	"github.com/techentia-work/vtcc-australia/models"
	"github.com/techentia-work/vtcc-australia/services/notification"
	"github.com/techentia-work/vtcc-australia/services/payment"
	"github.com/techentia-work/vtcc-australia/utils"
)

// DefaultBookingService drives the booking lifecycle:
// draft -> advance_pending -> advance_paid. It exclusively owns status and
// payment-snapshot mutation; pricing is written exactly once at creation.
type DefaultBookingService struct {
	Repo         bookingRepo.Repository
	Availability *AvailabilityEngine
	Gateway      payment.Gateway
	Notifier     notification.Notifier
	Locker       SlotLocker
	Now          func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingService) CheckAvailability(ctx context.Context, req models.AvailabilityRequest) (*models.AvailabilityResult, error) {
	interval := models.TimeInterval{From: req.TimeFrom, To: req.TimeTo}
	return s.Availability.CheckAvailability(ctx, req.Date, req.Halls, interval)
}

func (s *DefaultBookingService) AvailableSlots(ctx context.Context, req models.SlotsRequest) ([]models.TimeOfDay, error) {
	return s.Availability.AvailableSlotStarts(ctx, req.Date, req.Halls)
}

// CreateWithAdvance runs the full creation sequence. The availability check is
// repeated under a per-hall-per-date lock so two concurrent submissions for
// the same window cannot both pass it.
//
// If the payment order cannot be opened the booking is still persisted in
// advance_pending without an order id, and the error is surfaced as retryable;
// RetryOrder obtains a new order against the same booking id.
func (s *DefaultBookingService) CreateWithAdvance(ctx context.Context, req *models.BookingRequest) (*models.Booking, *models.PaymentOrder, error) {
	logger := utils.GetLogger()

	if errs := ValidateRequest(req, s.now()); len(errs) > 0 {
		return nil, nil, &ValidationError{Errors: errs}
	}

	pricing, err := ComputePricing(req.EventType, req.Guests)
	if err != nil {
		return nil, nil, err
	}

	release, err := s.Locker.Acquire(ctx, req.Date, req.Halls)
	if err != nil {
		return nil, nil, err
	}
	defer release()

	interval := models.TimeInterval{From: req.TimeFrom, To: req.TimeTo}
	result, err := s.Availability.CheckAvailability(ctx, req.Date, req.Halls, interval)
	if err != nil {
		return nil, nil, err
	}
	if !result.Available {
		return nil, nil, &SlotConflictError{Conflicts: result.Conflicts}
	}

	now := s.now()
	booking := &models.Booking{
		ID:          uuid.New().String(),
		BookingType: req.BookingType,
		EventType:   req.EventType,
		Halls:       req.Halls,
		Guests:      req.Guests,
		Date:        req.Date,
		TimeFrom:    req.TimeFrom,
		TimeTo:      req.TimeTo,
		Services:    req.Services,
		Info:        req.Info,
		Contact:     req.Contact,
		Pricing:     pricing,
		Payment: models.Payment{
			DepositStatus: "pending",
			BalanceStatus: "pending",
		},
		Status:    models.StatusAdvancePending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	order, orderErr := s.Gateway.CreateOrder(ctx, pricing.DepositAmount, pricing.Currency,
		fmt.Sprintf("Advance payment for %s event", req.EventType))
	if orderErr != nil {
		logger.Warn("payment order creation failed, persisting booking without order",
			zap.String("bookingID", booking.ID), zap.Error(orderErr))
	} else {
		booking.Payment.OrderID = order.ID
	}

	if err := s.Repo.Append(ctx, booking); err != nil {
		return nil, nil, &UpstreamUnavailableError{Op: "persist booking", Err: err}
	}

	if orderErr != nil {
		return booking, nil, &UpstreamUnavailableError{Op: "create payment order", Err: orderErr}
	}
	return booking, order, nil
}

// RetryOrder opens a fresh deposit order for an advance_pending booking.
func (s *DefaultBookingService) RetryOrder(ctx context.Context, bookingID string) (*models.Booking, *models.PaymentOrder, error) {
	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}
	if booking.Status != models.StatusAdvancePending {
		return nil, nil, fmt.Errorf("booking %s is %s, only %s bookings can request a new order",
			bookingID, booking.Status, models.StatusAdvancePending)
	}

	order, err := s.Gateway.CreateOrder(ctx, booking.Pricing.DepositAmount, booking.Pricing.Currency,
		fmt.Sprintf("Advance payment for %s event", booking.EventType))
	if err != nil {
		return nil, nil, &UpstreamUnavailableError{Op: "create payment order", Err: err}
	}

	booking.Payment.OrderID = order.ID
	booking.UpdatedAt = s.now()
	if err := s.Repo.Update(ctx, booking); err != nil {
		return nil, nil, &UpstreamUnavailableError{Op: "persist booking", Err: err}
	}
	return booking, order, nil
}

// ConfirmPayment verifies the checkout callback signature and moves the
// booking to advance_paid. A failed or dismissed payment never changes state;
// the booking stays advance_pending and remains retryable.
func (s *DefaultBookingService) ConfirmPayment(ctx context.Context, v models.PaymentVerification) (*models.Booking, models.EmailStatus, error) {
	logger := utils.GetLogger()
	var emails models.EmailStatus

	if !s.Gateway.VerifySignature(v.OrderID, v.PaymentID, v.Signature) {
		return nil, emails, &SignatureMismatchError{OrderID: v.OrderID}
	}

	booking, err := s.Repo.GetByID(ctx, v.BookingID)
	if err != nil {
		return nil, emails, err
	}

	// A booking never drops back from advance_paid; a replayed callback is a
	// no-op rather than an error.
	if booking.Status == models.StatusAdvancePaid {
		return booking, emails, nil
	}

	now := s.now()
	booking.Status = models.StatusAdvancePaid
	booking.Payment.OrderID = v.OrderID
	booking.Payment.PaymentID = v.PaymentID
	booking.Payment.DepositStatus = "paid"
	booking.Payment.BalanceStatus = "partial"
	booking.Payment.PaidAt = now.Format(time.RFC3339)
	booking.Payment.BalanceDueDate = now.AddDate(0, 0, config.AppConfig.BalanceDueDays).Format("2006-01-02")
	booking.UpdatedAt = now

	if err := s.Repo.Update(ctx, booking); err != nil {
		return nil, emails, &UpstreamUnavailableError{Op: "persist payment", Err: err}
	}

	// Notifications are best-effort and independently reported. Their failure
	// never rolls back the transition.
	if err := s.Notifier.SendCustomerConfirmation(ctx, booking); err != nil {
		logger.Warn("customer confirmation failed",
			zap.String("bookingID", booking.ID), zap.Error(err))
	} else {
		emails.CustomerEmailSent = true
	}
	if err := s.Notifier.SendAdminNotification(ctx, booking); err != nil {
		logger.Warn("admin notification failed",
			zap.String("bookingID", booking.ID), zap.Error(err))
	} else {
		emails.AdminEmailSent = true
	}

	return booking, emails, nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return s.Repo.GetByID(ctx, id)
}

// Stats summarizes the stored corpus: totals by status and how many bookings
// lie on or after today.
func (s *DefaultBookingService) Stats(ctx context.Context) (*models.BookingStats, error) {
	all, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, &UpstreamUnavailableError{Op: "booking stats", Err: err}
	}

	today := s.now().Format("2006-01-02")
	stats := &models.BookingStats{
		Total:    len(all),
		ByStatus: map[string]int{},
	}
	for _, b := range all {
		stats.ByStatus[b.Status]++
		if b.Date >= today && b.Active() {
			stats.Upcoming++
		}
	}
	return stats, nil
}
