package itinerary

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/mifrandir/fluctour/internal/geo"
	"github.com/mifrandir/fluctour/internal/maps"
)

// ErrInvalidRequest marks trip parameters the planner rejects outright.
var ErrInvalidRequest = errors.New("invalid request")

const (
	maxStopsLimit = 10
	travelMode    = "driving"
	dateFormat    = "2006-01-02"
	entryFormat   = "Jan 02"
)

type Service struct {
	maps maps.API
}

func NewService(mapsAPI maps.API) *Service {
	return &Service{maps: mapsAPI}
}

// Generate builds a complete itinerary: geocodes the endpoints, selects
// and orders intermediate stops, distributes days and assembles per-leg
// travel summaries. Endpoint geocoding failures abort; everything else
// degrades by skipping the offending item.
func (s *Service) Generate(ctx context.Context, req Request) (Itinerary, error) {
	if err := req.validate(); err != nil {
		return Itinerary{}, err
	}

	totalDays := int(req.EndDate.Sub(req.StartDate).Hours() / 24)
	if totalDays < req.MinStay {
		return Itinerary{}, fmt.Errorf("%w: trip duration (%d days) is less than minimum stay (%d days)",
			ErrInvalidRequest, totalDays, req.MinStay)
	}

	start, err := s.maps.Geocode(ctx, req.Start)
	if err != nil {
		return Itinerary{}, fmt.Errorf("geocode start: %w", err)
	}
	end, err := s.maps.Geocode(ctx, req.End)
	if err != nil {
		return Itinerary{}, fmt.Errorf("geocode end: %w", err)
	}

	log.Printf("planning route from %s to %s", start.FormattedAddress, end.FormattedAddress)

	stops := s.selectStops(ctx, start, end, req.Constraints, req.MaxStops, totalDays, req.MinStay)

	locations := make([]maps.Place, 0, len(stops)+2)
	locations = append(locations, start)
	locations = append(locations, stops...)
	locations = append(locations, end)

	return Itinerary{
		StartLocation: req.Start,
		EndLocation:   req.End,
		StartDate:     req.StartDate.Format(dateFormat),
		EndDate:       req.EndDate.Format(dateFormat),
		TotalDays:     totalDays,
		Locations:     locations,
		Schedule:      buildSchedule(locations, req.StartDate, totalDays, req.MinStay),
		TravelLegs:    s.travelLegs(ctx, locations),
	}, nil
}

func (req Request) validate() error {
	if req.Start == "" || req.End == "" {
		return fmt.Errorf("%w: start and end locations are required", ErrInvalidRequest)
	}
	if req.MinStay < 1 {
		return fmt.Errorf("%w: min_stay must be at least 1 day", ErrInvalidRequest)
	}
	if req.MaxStops < 0 {
		return fmt.Errorf("%w: max_stops must be non-negative", ErrInvalidRequest)
	}
	if req.MaxStops > maxStopsLimit {
		return fmt.Errorf("%w: max_stops must not exceed %d", ErrInvalidRequest, maxStopsLimit)
	}
	if !req.EndDate.After(req.StartDate) {
		return fmt.Errorf("%w: start date must be before end date", ErrInvalidRequest)
	}
	return nil
}

// travelLegs requests directions for each consecutive pair. Missing or
// failed directions yield "Unknown" texts rather than failing the trip.
func (s *Service) travelLegs(ctx context.Context, locations []maps.Place) []TravelLeg {
	if len(locations) < 2 {
		return nil
	}

	legs := make([]TravelLeg, 0, len(locations)-1)
	for i := 0; i < len(locations)-1; i++ {
		from, to := locations[i], locations[i+1]
		leg := TravelLeg{
			From:          from.FormattedAddress,
			To:            to.FormattedAddress,
			Distance:      "Unknown",
			Duration:      "Unknown",
			Mode:          travelMode,
			DirectionsURL: maps.DirectionsURL(from.FormattedAddress, to.FormattedAddress),
		}

		info, err := s.maps.Directions(ctx, from.Point(), to.Point())
		if err != nil {
			log.Printf("directions %s -> %s: %v", from.FormattedAddress, to.FormattedAddress, err)
		} else {
			if info.DistanceText != "" {
				leg.Distance = info.DistanceText
			}
			if info.DurationText != "" {
				leg.Duration = info.DurationText
			}
		}
		legs = append(legs, leg)
	}
	return legs
}

// routePosition is a convenience for sorting stops between two places.
func routePosition(start, end, stop maps.Place) float64 {
	return geo.RoutePosition(start.Point(), end.Point(), stop.Point())
}
