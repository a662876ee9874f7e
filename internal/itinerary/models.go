package itinerary

import (
	"time"

	"github.com/mifrandir/fluctour/internal/maps"
)

// Request are the trip parameters supplied by the caller. Dates are whole
// days; the trip spans EndDate minus StartDate days.
type Request struct {
	Start       string
	End         string
	StartDate   time.Time
	EndDate     time.Time
	Constraints []string
	MaxStops    int
	MinStay     int
}

// ScheduleEntry assigns a date span to one location of the route.
type ScheduleEntry struct {
	Location  maps.Place `json:"location"`
	StartDate string     `json:"start_date"`
	EndDate   string     `json:"end_date"`
	Days      int        `json:"days"`
	MapsURL   string     `json:"google_maps_url"`
}

// TravelLeg summarizes the drive between two consecutive locations.
type TravelLeg struct {
	From          string `json:"from"`
	To            string `json:"to"`
	Distance      string `json:"distance"`
	Duration      string `json:"duration"`
	Mode          string `json:"mode"`
	DirectionsURL string `json:"directions_url"`
}

// Itinerary is the complete generated plan. It has no persisted identity;
// every generation call builds a fresh one.
type Itinerary struct {
	StartLocation string          `json:"start_location"`
	EndLocation   string          `json:"end_location"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	TotalDays     int             `json:"total_days"`
	Locations     []maps.Place    `json:"locations"`
	Schedule      []ScheduleEntry `json:"daily_schedule"`
	TravelLegs    []TravelLeg     `json:"travel_legs"`
}
