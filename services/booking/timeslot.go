package booking

import (
	"fmt"

	"github.com/techentia-work/vtcc-australia/models"
)

// The venue sells hourly starting points from 08:00 through 23:00, giving 16
// canonical slots per day. The catalog is venue-wide and not configurable per
// hall.
const (
	firstSlotHour24 = 8
	lastSlotHour24  = 23
)

// CandidateSlots generates the full ordered slot catalog for a day. It is
// stateless and deterministic; callers get a fresh slice every time.
func CandidateSlots() []models.TimeOfDay {
	slots := make([]models.TimeOfDay, 0, lastSlotHour24-firstSlotHour24+1)
	for hour := firstSlotHour24; hour <= lastSlotHour24; hour++ {
		meridian := "AM"
		if hour >= 12 {
			meridian = "PM"
		}
		displayHour := hour
		if hour > 12 {
			displayHour = hour - 12
		} else if hour == 0 {
			displayHour = 12
		}
		slots = append(slots, models.TimeOfDay{
			Hour:     fmt.Sprintf("%02d", displayHour),
			Minute:   "00",
			Meridian: meridian,
		})
	}
	return slots
}
