package booking

import (
	"context"

	"go.uber.org/zap"

	bookingRepo "github.com/techentia-work/vtcc-australia/database/repository/booking"
	"github.com/techentia-work/vtcc-australia/models"
	"github.com/techentia-work/vtcc-australia/utils"
)

// Availability fail modes. failOpen reports the slot as free when the booking
// store cannot be reached; failClosed surfaces the error instead. Fail-open
// matches the venue's policy of never blocking a customer on an outage, at the
// cost of admitting the occasional double-booking for manual resolution.
const (
	FailOpen   = "failOpen"
	FailClosed = "failClosed"
)

// AvailabilityEngine answers free/conflict questions over the stored booking
// corpus. It never mutates a booking; every call re-reads the full corpus.
type AvailabilityEngine struct {
	Repo     bookingRepo.Repository
	FailMode string
}

// CheckAvailability reports whether the interval is free across all requested
// halls on the given date, listing the conflicting bookings if not.
//
// A booking conflicts when it shares the exact date string, is neither
// cancelled nor a draft, occupies at least one requested hall, and its minute
// interval overlaps the request under the half-open test
// (reqStart < bookedEnd && reqEnd > bookedStart). Back-to-back bookings, one
// ending exactly when the next starts, do not conflict.
func (e *AvailabilityEngine) CheckAvailability(ctx context.Context, date string, halls []string, interval models.TimeInterval) (*models.AvailabilityResult, error) {
	reqStart, reqEnd, err := interval.MinuteRange()
	if err != nil {
		return nil, err
	}

	logger := utils.GetLogger()
	all, err := e.Repo.ListAll(ctx)
	if err != nil {
		if e.FailMode == FailClosed {
			return nil, &UpstreamUnavailableError{Op: "availability check", Err: err}
		}
		logger.Warn("availability check failing open: booking store unreachable",
			zap.String("date", date), zap.Error(err))
		return &models.AvailabilityResult{Available: true, Conflicts: []models.Booking{}}, nil
	}

	conflicts := []models.Booking{}
	for _, b := range all {
		if b.Date != date || !b.Active() || !b.HallsOverlap(halls) {
			continue
		}
		bookedStart, bookedEnd, err := b.Interval().MinuteRange()
		if err != nil {
			logger.Warn("stored booking has unusable interval, skipping",
				zap.String("bookingID", b.ID), zap.Error(err))
			continue
		}
		if reqStart < bookedEnd && reqEnd > bookedStart {
			conflicts = append(conflicts, b)
		}
	}

	return &models.AvailabilityResult{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}

// AvailableSlotStarts returns the slot catalog filtered down to starting
// points not covered by any active booking on the requested halls. A slot is
// covered when its minute value falls inside a booked [start, end) range.
//
// The result only lists raw free starting points. It does not account for the
// duration of the event being planned; callers must re-validate the full
// interval with CheckAvailability before committing.
func (e *AvailabilityEngine) AvailableSlotStarts(ctx context.Context, date string, halls []string) ([]models.TimeOfDay, error) {
	logger := utils.GetLogger()
	all, err := e.Repo.ListAll(ctx)
	if err != nil {
		if e.FailMode == FailClosed {
			return nil, &UpstreamUnavailableError{Op: "slot listing", Err: err}
		}
		logger.Warn("slot listing failing open: booking store unreachable",
			zap.String("date", date), zap.Error(err))
		return CandidateSlots(), nil
	}

	type minuteRange struct{ start, end int }
	var booked []minuteRange
	for _, b := range all {
		if b.Date != date || !b.Active() || !b.HallsOverlap(halls) {
			continue
		}
		start, end, err := b.Interval().MinuteRange()
		if err != nil {
			logger.Warn("stored booking has unusable interval, skipping",
				zap.String("bookingID", b.ID), zap.Error(err))
			continue
		}
		booked = append(booked, minuteRange{start, end})
	}

	free := make([]models.TimeOfDay, 0, 16)
	for _, slot := range CandidateSlots() {
		slotMinutes, err := slot.Minutes()
		if err != nil {
			continue
		}
		covered := false
		for _, r := range booked {
			if slotMinutes >= r.start && slotMinutes < r.end {
				covered = true
				break
			}
		}
		if !covered {
			free = append(free, slot)
		}
	}
	return free, nil
}
