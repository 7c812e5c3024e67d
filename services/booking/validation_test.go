package booking

import (
	"strings"
	"testing"

	"github.com/techentia-work/vtcc-australia/models"
)

func TestValidateRequestAcceptsCompleteRequest(t *testing.T) {
	if errs := ValidateRequest(validRequest(), fixedNow()); len(errs) != 0 {
		t.Errorf("valid request rejected: %v", errs)
	}
}

func TestValidateRequestCollectsEveryViolation(t *testing.T) {
	// Under-minimum guests and a past date must both be reported in one call.
	req := validRequest()
	req.Guests = 50
	req.Date = "2025-01-01"

	errs := ValidateRequest(req, fixedNow())
	if len(errs) < 2 {
		t.Fatalf("got %d errors, want at least 2: %v", len(errs), errs)
	}
	assertHasError(t, errs, "minimum number of guests")
	assertHasError(t, errs, "must be in the future")
}

func TestValidateRequestContactRules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.BookingRequest)
		want   string
	}{
		{"missing first name", func(r *models.BookingRequest) { r.Contact.FirstName = "  " }, "First name is required"},
		{"missing last name", func(r *models.BookingRequest) { r.Contact.LastName = "" }, "Last name is required"},
		{"missing email", func(r *models.BookingRequest) { r.Contact.Email = "" }, "Email is required"},
		{"bad email", func(r *models.BookingRequest) { r.Contact.Email = "not an email" }, "valid email"},
		{"missing mobile", func(r *models.BookingRequest) { r.Contact.Mobile = "" }, "Mobile is required"},
		{"local-format mobile", func(r *models.BookingRequest) { r.Contact.Mobile = "0400123456" }, "Australian mobile"},
		{"spaced mobile", func(r *models.BookingRequest) { r.Contact.Mobile = "+61 400 123 456" }, "Australian mobile"},
		{"short mobile", func(r *models.BookingRequest) { r.Contact.Mobile = "+6140012345" }, "Australian mobile"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)
			assertHasError(t, ValidateRequest(req, fixedNow()), tc.want)
		})
	}
}

func TestValidateRequestBookingRules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.BookingRequest)
		want   string
	}{
		{"no halls", func(r *models.BookingRequest) { r.Halls = nil }, "Hall selection is required"},
		{"unknown hall", func(r *models.BookingRequest) { r.Halls = []string{"Rooftop"} }, "Unknown hall"},
		{"no event type", func(r *models.BookingRequest) { r.EventType = "" }, "Event type is required"},
		{"bad event type", func(r *models.BookingRequest) { r.EventType = "gala" }, "Invalid event type"},
		{"zero guests", func(r *models.BookingRequest) { r.Guests = 0 }, "Valid guest count"},
		{"no date", func(r *models.BookingRequest) { r.Date = "" }, "Date is required"},
		{"bad date format", func(r *models.BookingRequest) { r.Date = "15/09/2025" }, "YYYY-MM-DD"},
		{"today is not future", func(r *models.BookingRequest) { r.Date = "2025-08-01" }, "must be in the future"},
		{"no services", func(r *models.BookingRequest) { r.Services = nil }, "At least one service"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)
			assertHasError(t, ValidateRequest(req, fixedNow()), tc.want)
		})
	}
}

func TestValidateRequestTimeRules(t *testing.T) {
	t.Run("missing start time", func(t *testing.T) {
		req := validRequest()
		req.TimeFrom = models.TimeOfDay{}
		assertHasError(t, ValidateRequest(req, fixedNow()), "Start time is required")
	})
	t.Run("partial end time", func(t *testing.T) {
		req := validRequest()
		req.TimeTo.Minute = ""
		assertHasError(t, ValidateRequest(req, fixedNow()), "End time is required")
	})
	t.Run("end before start", func(t *testing.T) {
		req := validRequest()
		req.TimeFrom = tod("09", "00", "PM")
		req.TimeTo = tod("07", "00", "PM")
		assertHasError(t, ValidateRequest(req, fixedNow()), "End time must be after start time")
	})
	t.Run("no ordering error when an endpoint is missing", func(t *testing.T) {
		req := validRequest()
		req.TimeTo = models.TimeOfDay{}
		for _, e := range ValidateRequest(req, fixedNow()) {
			if strings.Contains(e, "after start") {
				t.Errorf("ordering rule fired with missing endpoint: %v", e)
			}
		}
	})
}

func assertHasError(t *testing.T, errs []string, fragment string) {
	t.Helper()
	for _, e := range errs {
		if strings.Contains(e, fragment) {
			return
		}
	}
	t.Errorf("errors %v do not contain %q", errs, fragment)
}
