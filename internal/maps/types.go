package maps

import "github.com/mifrandir/fluctour/internal/geo"

// Place is a geocoded location. Geocoding results carry the address and
// place ID; nearby-search results additionally carry a name, rating and
// the place type the search was issued for.
type Place struct {
	Name             string   `json:"name,omitempty"`
	FormattedAddress string   `json:"formatted_address"`
	Lat              float64  `json:"lat"`
	Lng              float64  `json:"lng"`
	PlaceID          string   `json:"place_id"`
	Types            []string `json:"types,omitempty"`
	Rating           float64  `json:"rating,omitempty"`
	SearchType       string   `json:"search_type,omitempty"`
}

func (p Place) Point() geo.Point {
	return geo.Point{Lat: p.Lat, Lng: p.Lng}
}

// DisplayName prefers the place name over the formatted address.
func (p Place) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.FormattedAddress
}

// Leg is the human-readable travel summary between two points.
type Leg struct {
	DistanceText string `json:"distance"`
	DurationText string `json:"duration"`
}
