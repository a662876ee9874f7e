package itinerary

import (
	"context"
	"log"
	"sort"

	"github.com/mifrandir/fluctour/internal/geo"
	"github.com/mifrandir/fluctour/internal/maps"
)

const (
	// Radius of the nearby-place search at each interpolated route point.
	searchRadiusM = 30000
	// Minimum distance a discovered stop must keep from both endpoints.
	endpointClearanceM = 10000
	// A stop may not stretch the trip beyond 1.5x the direct distance.
	detourFactor = 1.5
)

// selectStops picks intermediate stops between start and end. Constraint
// locations come first, then discovered places fill unused capacity; the
// result is ordered by fractional position along the route. The list may
// be shorter than capacity when constraints fail to resolve or a search
// slot yields no usable candidate.
func (s *Service) selectStops(ctx context.Context, start, end maps.Place, constraints []string, maxStops, totalDays, minStay int) []maps.Place {
	available := totalDays - 2*minStay
	capacity := min(maxStops, available/minStay)
	if capacity <= 0 {
		return nil
	}

	var stops []maps.Place
	for _, location := range constraints {
		if len(stops) >= capacity {
			break
		}
		place, err := s.maps.Geocode(ctx, location)
		if err != nil {
			log.Printf("skipping constraint location %q: %v", location, err)
			continue
		}
		if !withinDetour(start, end, place) {
			continue
		}
		stops = append(stops, place)
	}

	if remaining := capacity - len(stops); remaining > 0 {
		stops = append(stops, s.placesAlongRoute(ctx, start, end, remaining)...)
	}

	sortByRoutePosition(start, end, stops)
	if len(stops) > capacity {
		stops = stops[:capacity]
	}
	return stops
}

// placesAlongRoute searches for one stop per slot at evenly spaced points
// between start and end. A slot whose search fails, returns nothing, or
// only returns places hugging an endpoint is simply skipped.
func (s *Service) placesAlongRoute(ctx context.Context, start, end maps.Place, slots int) []maps.Place {
	var places []maps.Place
	for i := 1; i <= slots; i++ {
		ratio := float64(i) / float64(slots+1)
		center := geo.Interpolate(start.Point(), end.Point(), ratio)

		candidates, err := s.maps.NearbySearch(ctx, center, searchRadiusM)
		if err != nil {
			log.Printf("nearby search at %.4f,%.4f: %v", center.Lat, center.Lng, err)
			continue
		}
		for _, candidate := range candidates {
			if geo.DistanceM(candidate.Point(), start.Point()) > endpointClearanceM &&
				geo.DistanceM(candidate.Point(), end.Point()) > endpointClearanceM {
				places = append(places, candidate)
				break
			}
		}
	}
	return places
}

func withinDetour(start, end, stop maps.Place) bool {
	direct := geo.DistanceM(start.Point(), end.Point())
	via := geo.DistanceM(start.Point(), stop.Point()) + geo.DistanceM(stop.Point(), end.Point())
	return via <= direct*detourFactor
}

// sortByRoutePosition orders stops by fractional distance along the
// start->end line. The sort is stable so stops at equal positions keep
// their selection order.
func sortByRoutePosition(start, end maps.Place, stops []maps.Place) {
	sort.SliceStable(stops, func(i, j int) bool {
		return routePosition(start, end, stops[i]) < routePosition(start, end, stops[j])
	})
}
