package models

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Booking statuses form a closed enumeration. A booking is created as a draft,
// moves to advance_pending when a deposit order is requested, to advance_paid
// when the deposit payment is verified, and only administrative action moves it
// to completed or cancelled.
const (
	StatusDraft          = "draft"
	StatusAdvancePending = "advance_pending"
	StatusAdvancePaid    = "advance_paid"
	StatusCompleted      = "completed"
	StatusCancelled      = "cancelled"
)

// ErrIncompleteTime is returned when a TimeOfDay is missing one of its fields.
var ErrIncompleteTime = errors.New("time of day is incomplete")

// TimeOfDay is a 12-hour clock value as submitted by clients. Hour and Minute
// stay strings on the wire; empty fields are detectable and rejected rather
// than silently parsed as zero.
type TimeOfDay struct {
	Hour     string `json:"hour"`
	Minute   string `json:"minute"`
	Meridian string `json:"meridian"` // "AM" or "PM"
}

// Minutes converts the value to minutes since midnight (0-1439).
func (t TimeOfDay) Minutes() (int, error) {
	if t.Hour == "" || t.Minute == "" || (t.Meridian != "AM" && t.Meridian != "PM") {
		return 0, ErrIncompleteTime
	}
	hour, err := strconv.Atoi(t.Hour)
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("invalid hour %q", t.Hour)
	}
	minute, err := strconv.Atoi(t.Minute)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute %q", t.Minute)
	}
	if t.Meridian == "PM" && hour != 12 {
		hour += 12
	} else if t.Meridian == "AM" && hour == 12 {
		hour = 0
	}
	return hour*60 + minute, nil
}

// IsZero reports whether the value has no fields set at all.
func (t TimeOfDay) IsZero() bool {
	return t.Hour == "" && t.Minute == ""
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%s:%s %s", t.Hour, t.Minute, t.Meridian)
}

// TimeInterval is a half-open [From, To) span within one calendar day.
type TimeInterval struct {
	From TimeOfDay `json:"from"`
	To   TimeOfDay `json:"to"`
}

// MinuteRange resolves both endpoints to minutes since midnight.
func (iv TimeInterval) MinuteRange() (start, end int, err error) {
	start, err = iv.From.Minutes()
	if err != nil {
		return 0, 0, fmt.Errorf("interval start: %w", err)
	}
	end, err = iv.To.Minutes()
	if err != nil {
		return 0, 0, fmt.Errorf("interval end: %w", err)
	}
	if start >= end {
		return 0, 0, fmt.Errorf("interval end %d must be after start %d", end, start)
	}
	return start, end, nil
}

// Contact holds the customer contact details attached to a booking.
type Contact struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Mobile    string `json:"mobile"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	Country   string `json:"country,omitempty"`
	Postcode  string `json:"postcode,omitempty"`
}

// Pricing is the snapshot computed once at booking creation.
type Pricing struct {
	TotalAmount       int64  `json:"totalAmount"`
	DepositAmount     int64  `json:"depositAmount"`
	RemainingAmount   int64  `json:"remainingAmount"`
	DepositPercentage int    `json:"depositPercentage"`
	Currency          string `json:"currency"`
}

// Payment is the mutable payment snapshot owned by the booking lifecycle.
type Payment struct {
	OrderID        string `json:"orderId,omitempty"`
	PaymentID      string `json:"paymentId,omitempty"`
	DepositStatus  string `json:"depositStatus"` // "pending", "paid", "failed"
	BalanceStatus  string `json:"balanceStatus"` // "pending", "partial", "paid"
	PaidAt         string `json:"paidAt,omitempty"`
	BalanceDueDate string `json:"balanceDueDate,omitempty"`
}

// Booking is the central reservation record.
type Booking struct {
	ID          string    `json:"id"`
	BookingType string    `json:"bookingType"` // "private" or "organization"
	EventType   string    `json:"eventType"`
	Halls       []string  `json:"hallSelection"`
	Guests      int       `json:"guests"`
	Date        string    `json:"date"` // "YYYY-MM-DD", exact string match for availability
	TimeFrom    TimeOfDay `json:"timeFrom"`
	TimeTo      TimeOfDay `json:"timeTo"`
	Services    []string  `json:"services"`
	Info        string    `json:"info,omitempty"`
	Contact     Contact   `json:"contact"`
	Pricing     Pricing   `json:"pricing"`
	Payment     Payment   `json:"payment"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Interval returns the booking's time span.
func (b *Booking) Interval() TimeInterval {
	return TimeInterval{From: b.TimeFrom, To: b.TimeTo}
}

// Active reports whether the booking blocks its halls for availability purposes.
// Drafts have not committed to a slot and cancelled bookings have released it.
func (b *Booking) Active() bool {
	return b.Status != StatusCancelled && b.Status != StatusDraft
}

// HallsOverlap reports whether the booking occupies any of the given halls.
func (b *Booking) HallsOverlap(halls []string) bool {
	for _, requested := range halls {
		for _, booked := range b.Halls {
			if requested == booked {
				return true
			}
		}
	}
	return false
}
