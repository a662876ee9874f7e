// Package render formats itineraries as plain text for the console.
package render

import (
	"fmt"
	"strings"

	"github.com/mifrandir/fluctour/internal/itinerary"
)

// Text renders an itinerary as a console-friendly report.
func Text(it itinerary.Itinerary) string {
	var b strings.Builder
	bar := strings.Repeat("=", 60)
	rule := strings.Repeat("-", 40)

	fmt.Fprintln(&b, bar)
	fmt.Fprintln(&b, "TRAVEL ITINERARY")
	fmt.Fprintln(&b, bar)
	fmt.Fprintf(&b, "From: %s\n", it.StartLocation)
	fmt.Fprintf(&b, "To: %s\n", it.EndLocation)
	fmt.Fprintf(&b, "Duration: %s to %s (%d days)\n", it.StartDate, it.EndDate, it.TotalDays)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "SCHEDULE:")
	fmt.Fprintln(&b, rule)
	for i, entry := range it.Schedule {
		fmt.Fprintf(&b, "%s - %s: %s\n", entry.StartDate, entry.EndDate, entry.Location.DisplayName())
		fmt.Fprintf(&b, "  Days: %d\n", entry.Days)
		fmt.Fprintf(&b, "  Google Maps: %s\n", entry.MapsURL)
		if i < len(it.Schedule)-1 {
			fmt.Fprintln(&b)
		}
	}

	if len(it.TravelLegs) > 0 {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, "TRAVEL BETWEEN LOCATIONS:")
		fmt.Fprintln(&b, rule)
		for _, leg := range it.TravelLegs {
			fmt.Fprintf(&b, "From: %s\n", leg.From)
			fmt.Fprintf(&b, "To: %s\n", leg.To)
			fmt.Fprintf(&b, "Distance: %s\n", leg.Distance)
			fmt.Fprintf(&b, "Duration: %s\n", leg.Duration)
			fmt.Fprintf(&b, "Directions: %s\n", leg.DirectionsURL)
			fmt.Fprintln(&b)
		}
	}

	fmt.Fprintln(&b, bar)
	fmt.Fprintln(&b, "Have a great trip!")
	fmt.Fprint(&b, bar)
	return b.String()
}
