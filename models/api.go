package models

// BookingRequest is the client payload for creating a booking.
type BookingRequest struct {
	BookingType string    `json:"bookingType"`
	EventType   string    `json:"eventType"`
	Halls       []string  `json:"hallSelection"`
	Guests      int       `json:"guests"`
	Date        string    `json:"date"`
	TimeFrom    TimeOfDay `json:"timeFrom"`
	TimeTo      TimeOfDay `json:"timeTo"`
	Services    []string  `json:"services"`
	Info        string    `json:"info,omitempty"`
	Contact     Contact   `json:"contact"`
}

// AvailabilityRequest asks whether an interval is free across the given halls.
type AvailabilityRequest struct {
	Date     string    `json:"date"`
	Halls    []string  `json:"hallSelection"`
	TimeFrom TimeOfDay `json:"timeFrom"`
	TimeTo   TimeOfDay `json:"timeTo"`
}

// AvailabilityResult reports the outcome of an availability check.
type AvailabilityResult struct {
	Available bool      `json:"available"`
	Conflicts []Booking `json:"conflicts"`
}

// SlotsRequest asks for the free slot starting points on a date.
type SlotsRequest struct {
	Date  string   `json:"date"`
	Halls []string `json:"hallSelection"`
}

// PaymentOrder mirrors the gateway's order entity as far as the booking flow
// needs it.
type PaymentOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // minor units
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// PaymentVerification is the signed callback payload from the payment gateway
// checkout, forwarded by the client.
type PaymentVerification struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
	BookingID string `json:"bookingId"`
}

// EmailStatus reports which best-effort confirmation emails were dispatched.
type EmailStatus struct {
	CustomerEmailSent bool `json:"customerEmailSent"`
	AdminEmailSent    bool `json:"adminEmailSent"`
}

// BookingStats is a summary of the stored booking corpus.
type BookingStats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
	Upcoming int            `json:"upcoming"`
}
