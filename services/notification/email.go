package notification

import (
	"context"
	"fmt"
	"strings"

	gomail "gopkg.in/gomail.v2"

	"github.com/techentia-work/vtcc-australia/config"
	"github.com/techentia-work/vtcc-australia/models"
)

// SMTPNotifier delivers confirmation emails over SMTP.
type SMTPNotifier struct {
	dialer *gomail.Dialer
}

func NewSMTPNotifier() *SMTPNotifier {
	cfg := config.AppConfig
	return &SMTPNotifier{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
	}
}

// SendCustomerConfirmation emails the customer that their deposit was received
// and the booking is confirmed.
func (n *SMTPNotifier) SendCustomerConfirmation(ctx context.Context, booking *models.Booking) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("%s <%s>", config.AppConfig.AppName, config.AppConfig.SMTPFrom))
	msg.SetHeader("To", booking.Contact.Email)
	msg.SetHeader("Subject", fmt.Sprintf("Booking confirmed — %s on %s", eventName(booking), booking.Date))
	msg.SetBody("text/plain", customerBody(booking))

	if err := n.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("customer confirmation email failed: %w", err)
	}
	return nil
}

// SendAdminNotification emails the venue admin about the newly paid booking.
func (n *SMTPNotifier) SendAdminNotification(ctx context.Context, booking *models.Booking) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("%s <%s>", config.AppConfig.AppName, config.AppConfig.SMTPFrom))
	msg.SetHeader("To", config.AppConfig.AdminEmail)
	msg.SetHeader("Subject", fmt.Sprintf("New paid booking %s — %s on %s", booking.ID, eventName(booking), booking.Date))
	msg.SetBody("text/plain", adminBody(booking))

	if err := n.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("admin notification email failed: %w", err)
	}
	return nil
}

func eventName(b *models.Booking) string {
	if plan, ok := models.PlanFor(b.EventType); ok {
		return plan.Name
	}
	return b.EventType
}

func customerBody(b *models.Booking) string {
	return fmt.Sprintf(
		"Dear %s %s,\n\n"+
			"Your booking is confirmed. We have received your deposit of %s.\n\n"+
			"Booking reference: %s\n"+
			"Event: %s\n"+
			"Date: %s\n"+
			"Time: %s - %s\n"+
			"Halls: %s\n"+
			"Guests: %d\n"+
			"Services: %s\n\n"+
			"Remaining balance: %s, due by %s.\n\n"+
			"Thank you for booking with %s.\n",
		b.Contact.FirstName, b.Contact.LastName,
		FormatAmount(b.Pricing.DepositAmount, b.Pricing.Currency),
		b.ID,
		eventName(b),
		b.Date,
		b.TimeFrom, b.TimeTo,
		strings.Join(b.Halls, ", "),
		b.Guests,
		strings.Join(b.Services, ", "),
		FormatAmount(b.Pricing.RemainingAmount, b.Pricing.Currency),
		b.Payment.BalanceDueDate,
		config.AppConfig.AppName,
	)
}

func adminBody(b *models.Booking) string {
	return fmt.Sprintf(
		"A booking has been paid and confirmed.\n\n"+
			"Booking: %s\n"+
			"Event: %s (%s guests: %d)\n"+
			"Date: %s, %s - %s\n"+
			"Halls: %s\n"+
			"Customer: %s %s, %s, %s\n"+
			"Total: %s  Deposit paid: %s  Balance: %s\n"+
			"Order: %s  Payment: %s\n",
		b.ID,
		eventName(b), b.BookingType, b.Guests,
		b.Date, b.TimeFrom, b.TimeTo,
		strings.Join(b.Halls, ", "),
		b.Contact.FirstName, b.Contact.LastName, b.Contact.Email, b.Contact.Mobile,
		FormatAmount(b.Pricing.TotalAmount, b.Pricing.Currency),
		FormatAmount(b.Pricing.DepositAmount, b.Pricing.Currency),
		FormatAmount(b.Pricing.RemainingAmount, b.Pricing.Currency),
		b.Payment.OrderID, b.Payment.PaymentID,
	)
}

// FormatAmount renders a major-unit amount for email bodies, e.g. "AUD 1,250".
func FormatAmount(amount int64, currency string) string {
	s := fmt.Sprintf("%d", amount)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return currency + " " + s
}
