package booking

import (
	"testing"

	"github.com/techentia-work/vtcc-australia/models"
)

func TestTimeOfDayMinutes(t *testing.T) {
	cases := []struct {
		name string
		in   models.TimeOfDay
		want int
	}{
		{"morning", tod("08", "00", "AM"), 480},
		{"pm adds twelve hours", tod("06", "30", "PM"), 18*60 + 30},
		{"noon stays noon", tod("12", "00", "PM"), 720},
		{"midnight maps to zero", tod("12", "00", "AM"), 0},
		{"last slot", tod("11", "00", "PM"), 23 * 60},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.in.Minutes()
			if err != nil {
				t.Fatalf("Minutes() failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("Minutes() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestPMOffsetsNaiveMinutesByTwelveHours(t *testing.T) {
	// For every non-12 hour, PM must land exactly 720 minutes past the naive
	// hour*60+minute value.
	for hour := 1; hour <= 11; hour++ {
		h := tod(itoa2(hour), "15", "PM")
		got, err := h.Minutes()
		if err != nil {
			t.Fatalf("Minutes() failed for hour %d: %v", hour, err)
		}
		if want := hour*60 + 15 + 720; got != want {
			t.Errorf("hour %d PM: got %d, want %d", hour, got, want)
		}
	}
}

func TestTimeOfDayRejectsIncompleteOrInvalidFields(t *testing.T) {
	cases := []models.TimeOfDay{
		{},
		tod("", "30", "PM"),
		tod("06", "", "PM"),
		tod("06", "30", ""),
		tod("06", "30", "XM"),
		tod("13", "00", "AM"),
		tod("0", "00", "AM"),
		tod("06", "60", "PM"),
		tod("six", "30", "PM"),
	}
	for _, tc := range cases {
		if _, err := tc.Minutes(); err == nil {
			t.Errorf("Minutes() accepted %+v", tc)
		}
	}
}

func TestTimeOfDayIsZero(t *testing.T) {
	cases := []struct {
		name string
		in   models.TimeOfDay
		want bool
	}{
		{"unset", models.TimeOfDay{}, true},
		{"meridian alone is still unset", models.TimeOfDay{Meridian: "PM"}, true},
		{"hour only", tod("06", "", ""), false},
		{"minute only", tod("", "30", ""), false},
		{"fully set", tod("06", "30", "PM"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.IsZero(); got != tc.want {
				t.Errorf("IsZero() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIntervalMinuteRange(t *testing.T) {
	iv := models.TimeInterval{From: tod("06", "30", "PM"), To: tod("11", "00", "PM")}
	start, end, err := iv.MinuteRange()
	if err != nil {
		t.Fatalf("MinuteRange failed: %v", err)
	}
	if start != 1110 || end != 1380 {
		t.Errorf("got [%d,%d), want [1110,1380)", start, end)
	}

	inverted := models.TimeInterval{From: tod("11", "00", "PM"), To: tod("06", "30", "PM")}
	if _, _, err := inverted.MinuteRange(); err == nil {
		t.Error("inverted interval accepted")
	}
	empty := models.TimeInterval{From: tod("06", "30", "PM"), To: tod("06", "30", "PM")}
	if _, _, err := empty.MinuteRange(); err == nil {
		t.Error("empty interval accepted")
	}
}

func TestCandidateSlots(t *testing.T) {
	slots := CandidateSlots()
	if len(slots) != 16 {
		t.Fatalf("catalog has %d slots, want 16", len(slots))
	}
	if slots[0] != tod("08", "00", "AM") {
		t.Errorf("first slot = %v, want 08:00 AM", slots[0])
	}
	if slots[len(slots)-1] != tod("11", "00", "PM") {
		t.Errorf("last slot = %v, want 11:00 PM", slots[len(slots)-1])
	}

	prev := -1
	for _, slot := range slots {
		m, err := slot.Minutes()
		if err != nil {
			t.Fatalf("catalog slot %v does not parse: %v", slot, err)
		}
		if m <= prev {
			t.Fatalf("catalog not strictly increasing at %v", slot)
		}
		prev = m
	}
}

func itoa2(n int) string {
	if n < 10 {
		return "0" + string(rune('0'+n))
	}
	return string(rune('0'+n/10)) + string(rune('0'+n%10))
}
