package booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/techentia-work/vtcc-australia/models"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Australian mobiles only: +61 followed by exactly nine digits, no
	// spaces or dashes.
	mobilePattern = regexp.MustCompile(`^\+61\d{9}$`)
)

// ValidateRequest checks a booking request against every structural and
// business rule and returns all violations together, so a client can display
// the complete list in one round trip. It never short-circuits and it does
// not consult the availability engine; that check is layered on separately.
func ValidateRequest(req *models.BookingRequest, now time.Time) []string {
	var errs []string

	if strings.TrimSpace(req.Contact.FirstName) == "" {
		errs = append(errs, "First name is required")
	}
	if strings.TrimSpace(req.Contact.LastName) == "" {
		errs = append(errs, "Last name is required")
	}
	if strings.TrimSpace(req.Contact.Email) == "" {
		errs = append(errs, "Email is required")
	} else if !emailPattern.MatchString(req.Contact.Email) {
		errs = append(errs, "Please enter a valid email address")
	}
	if strings.TrimSpace(req.Contact.Mobile) == "" {
		errs = append(errs, "Mobile is required")
	} else if !mobilePattern.MatchString(req.Contact.Mobile) {
		errs = append(errs, "Please enter a valid Australian mobile number starting with +61")
	}

	if len(req.Halls) == 0 {
		errs = append(errs, "Hall selection is required")
	} else {
		for _, hall := range req.Halls {
			if !models.KnownHall(hall) {
				errs = append(errs, fmt.Sprintf("Unknown hall: %s", hall))
			}
		}
	}

	var plan models.EventPlan
	planKnown := false
	if req.EventType == "" {
		errs = append(errs, "Event type is required")
	} else if plan, planKnown = models.PlanFor(req.EventType); !planKnown {
		errs = append(errs, "Invalid event type")
	}

	if req.Guests <= 0 {
		errs = append(errs, "Valid guest count is required")
	} else if planKnown && req.Guests < plan.MinGuests {
		errs = append(errs, fmt.Sprintf("The minimum number of guests for %s is %d", plan.Name, plan.MinGuests))
	}

	if req.Date == "" {
		errs = append(errs, "Date is required")
	} else if eventDay, err := time.Parse("2006-01-02", req.Date); err != nil {
		errs = append(errs, "Date must be in YYYY-MM-DD format")
	} else if !eventDay.After(now) {
		errs = append(errs, "Event date must be in the future")
	}

	fromMinutes, fromErr := req.TimeFrom.Minutes()
	if fromErr != nil {
		errs = append(errs, "Start time is required")
	}
	toMinutes, toErr := req.TimeTo.Minutes()
	if toErr != nil {
		errs = append(errs, "End time is required")
	}
	if fromErr == nil && toErr == nil && fromMinutes >= toMinutes {
		errs = append(errs, "End time must be after start time")
	}

	if len(req.Services) == 0 {
		errs = append(errs, "At least one service must be selected")
	}

	return errs
}
