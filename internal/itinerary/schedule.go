package itinerary

import (
	"time"

	"github.com/mifrandir/fluctour/internal/maps"
)

// buildSchedule distributes totalDays across the location sequence. Every
// location gets max(minStay, totalDays/n) days; leftover days are handed
// out one at a time front to back, and the final location absorbs
// whatever remains. Entries are back to back: each one starts the day the
// previous one ends, and the day counts always sum to exactly totalDays.
// On trips too short to cover the minimum stay at both endpoints the
// final entry's stay shrinks, down to zero days for a minimum-length trip.
func buildSchedule(locations []maps.Place, startDate time.Time, totalDays, minStay int) []ScheduleEntry {
	n := len(locations)
	if n == 0 {
		return nil
	}

	base := max(minStay, totalDays/n)
	remainder := totalDays - base*n

	entries := make([]ScheduleEntry, 0, n)
	current := startDate
	for i, location := range locations {
		days := base
		if remainder > 0 && i < n-1 {
			days++
			remainder--
		}
		if i == n-1 {
			days += remainder
		}

		end := current.AddDate(0, 0, days)
		entries = append(entries, ScheduleEntry{
			Location:  location,
			StartDate: current.Format(entryFormat),
			EndDate:   end.Format(entryFormat),
			Days:      days,
			MapsURL:   maps.PlaceURL(location),
		})
		current = end
	}
	return entries
}
