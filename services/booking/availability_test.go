package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/techentia-work/vtcc-australia/models"
)

func TestCheckAvailabilityReportsOverlapOnSharedHall(t *testing.T) {
	// Existing booking: Palmyra Hall, 2025-09-15, 18:30-23:00.
	repo := &fakeRepo{bookings: []models.Booking{
		activeBooking("bk-1", "2025-09-15", []string{"Palmyra Hall"},
			tod("06", "30", "PM"), tod("11", "00", "PM")),
	}}
	engine := &AvailabilityEngine{Repo: repo, FailMode: FailOpen}

	// 19:00-20:00 falls inside 18:30-23:00.
	result, err := engine.CheckAvailability(context.Background(), "2025-09-15",
		[]string{"Palmyra Hall"},
		models.TimeInterval{From: tod("07", "00", "PM"), To: tod("08", "00", "PM")})
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}
	if result.Available {
		t.Error("overlapping request reported as available")
	}
	if len(result.Conflicts) != 1 || result.Conflicts[0].ID != "bk-1" {
		t.Errorf("conflicts = %+v, want bk-1", result.Conflicts)
	}
}

func TestCheckAvailabilityIgnoresDisjointHalls(t *testing.T) {
	repo := &fakeRepo{bookings: []models.Booking{
		activeBooking("bk-1", "2025-09-15", []string{"Palmyra Hall"},
			tod("06", "30", "PM"), tod("11", "00", "PM")),
	}}
	engine := &AvailabilityEngine{Repo: repo, FailMode: FailOpen}

	// Same date and fully overlapping time, but a different hall.
	result, err := engine.CheckAvailability(context.Background(), "2025-09-15",
		[]string{"Private Hall"},
		models.TimeInterval{From: tod("07", "00", "PM"), To: tod("08", "00", "PM")})
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}
	if !result.Available {
		t.Errorf("disjoint halls should never conflict: %+v", result.Conflicts)
	}
}

func TestCheckAvailabilityAllowsBackToBackBookings(t *testing.T) {
	repo := &fakeRepo{bookings: []models.Booking{
		activeBooking("bk-1", "2025-09-15", []string{"Palmyra Hall"},
			tod("02", "00", "PM"), tod("06", "00", "PM")),
	}}
	engine := &AvailabilityEngine{Repo: repo, FailMode: FailOpen}

	// Starts exactly when the existing booking ends: allowed under the
	// half-open convention.
	result, err := engine.CheckAvailability(context.Background(), "2025-09-15",
		[]string{"Palmyra Hall"},
		models.TimeInterval{From: tod("06", "00", "PM"), To: tod("09", "00", "PM")})
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}
	if !result.Available {
		t.Errorf("back-to-back booking rejected: %+v", result.Conflicts)
	}
}

func TestCheckAvailabilitySkipsDraftsCancelledAndOtherDates(t *testing.T) {
	from, to := tod("07", "00", "PM"), tod("09", "00", "PM")
	cancelled := activeBooking("bk-c", "2025-09-15", []string{"Palmyra Hall"}, from, to)
	cancelled.Status = models.StatusCancelled
	draft := activeBooking("bk-d", "2025-09-15", []string{"Palmyra Hall"}, from, to)
	draft.Status = models.StatusDraft
	otherDay := activeBooking("bk-o", "2025-09-16", []string{"Palmyra Hall"}, from, to)

	repo := &fakeRepo{bookings: []models.Booking{cancelled, draft, otherDay}}
	engine := &AvailabilityEngine{Repo: repo, FailMode: FailOpen}

	result, err := engine.CheckAvailability(context.Background(), "2025-09-15",
		[]string{"Palmyra Hall"}, models.TimeInterval{From: from, To: to})
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}
	if !result.Available {
		t.Errorf("inactive bookings should not block: %+v", result.Conflicts)
	}
}

func TestCheckAvailabilityFailsOpenWhenStoreUnreachable(t *testing.T) {
	repo := &fakeRepo{listErr: errStoreDown}
	engine := &AvailabilityEngine{Repo: repo, FailMode: FailOpen}

	result, err := engine.CheckAvailability(context.Background(), "2025-09-15",
		[]string{"Palmyra Hall"},
		models.TimeInterval{From: tod("07", "00", "PM"), To: tod("08", "00", "PM")})
	if err != nil {
		t.Fatalf("fail-open check returned error: %v", err)
	}
	if !result.Available || len(result.Conflicts) != 0 {
		t.Errorf("fail-open should report available with no conflicts, got %+v", result)
	}
}

func TestCheckAvailabilityFailsClosedWhenConfigured(t *testing.T) {
	repo := &fakeRepo{listErr: errStoreDown}
	engine := &AvailabilityEngine{Repo: repo, FailMode: FailClosed}

	_, err := engine.CheckAvailability(context.Background(), "2025-09-15",
		[]string{"Palmyra Hall"},
		models.TimeInterval{From: tod("07", "00", "PM"), To: tod("08", "00", "PM")})
	var upstream *UpstreamUnavailableError
	if !errors.As(err, &upstream) {
		t.Fatalf("got %v, want UpstreamUnavailableError", err)
	}
	if !errors.Is(err, errStoreDown) {
		t.Error("cause not wrapped")
	}
}

func TestAvailableSlotStartsFiltersBookedRanges(t *testing.T) {
	// 18:30-23:00 booked: slots 19:00 through 22:00 are covered. 18:00 is not
	// (it precedes the range start) and 23:00 is not (end is exclusive).
	repo := &fakeRepo{bookings: []models.Booking{
		activeBooking("bk-1", "2025-09-15", []string{"Palmyra Hall"},
			tod("06", "30", "PM"), tod("11", "00", "PM")),
	}}
	engine := &AvailabilityEngine{Repo: repo, FailMode: FailOpen}

	slots, err := engine.AvailableSlotStarts(context.Background(), "2025-09-15", []string{"Palmyra Hall"})
	if err != nil {
		t.Fatalf("AvailableSlotStarts failed: %v", err)
	}
	if len(slots) != 12 {
		t.Fatalf("got %d slots, want 12: %v", len(slots), slots)
	}

	booked := map[models.TimeOfDay]bool{}
	for _, s := range []models.TimeOfDay{
		tod("07", "00", "PM"), tod("08", "00", "PM"), tod("09", "00", "PM"), tod("10", "00", "PM"),
	} {
		booked[s] = true
	}
	for _, slot := range slots {
		if booked[slot] {
			t.Errorf("slot %v overlaps a booked range", slot)
		}
	}

	// Boundary slots survive.
	found23 := false
	for _, slot := range slots {
		if slot == tod("11", "00", "PM") {
			found23 = true
		}
	}
	if !found23 {
		t.Error("23:00 removed although booking ends there (end exclusive)")
	}
}

func TestAvailableSlotStartsIgnoresOtherHalls(t *testing.T) {
	repo := &fakeRepo{bookings: []models.Booking{
		activeBooking("bk-1", "2025-09-15", []string{"Palmyra Hall"},
			tod("08", "00", "AM"), tod("11", "00", "PM")),
	}}
	engine := &AvailabilityEngine{Repo: repo, FailMode: FailOpen}

	slots, err := engine.AvailableSlotStarts(context.Background(), "2025-09-15", []string{"Private Hall"})
	if err != nil {
		t.Fatalf("AvailableSlotStarts failed: %v", err)
	}
	if len(slots) != 16 {
		t.Errorf("got %d slots, want the full catalog", len(slots))
	}
}

func TestAvailableSlotStartsFailsOpenWithFullCatalog(t *testing.T) {
	repo := &fakeRepo{listErr: errStoreDown}
	engine := &AvailabilityEngine{Repo: repo, FailMode: FailOpen}

	slots, err := engine.AvailableSlotStarts(context.Background(), "2025-09-15", []string{"Palmyra Hall"})
	if err != nil {
		t.Fatalf("fail-open slot listing returned error: %v", err)
	}
	if len(slots) != 16 {
		t.Errorf("fail-open should return the full 16-slot catalog, got %d", len(slots))
	}
}

func TestAvailableSlotStartsFailsClosedWhenConfigured(t *testing.T) {
	repo := &fakeRepo{listErr: errStoreDown}
	engine := &AvailabilityEngine{Repo: repo, FailMode: FailClosed}

	if _, err := engine.AvailableSlotStarts(context.Background(), "2025-09-15", []string{"Palmyra Hall"}); err == nil {
		t.Fatal("fail-closed slot listing should surface the error")
	}
}
