package maps

import "strings"

// PlaceURL returns the Google Maps link for a place by its place ID.
func PlaceURL(p Place) string {
	return "https://www.google.com/maps/place/?q=place_id:" + p.PlaceID
}

// DirectionsURL returns a Google Maps directions link through the given
// addresses, with spaces replaced by plus signs.
func DirectionsURL(addresses ...string) string {
	segments := make([]string, len(addresses))
	for i, addr := range addresses {
		segments[i] = strings.ReplaceAll(addr, " ", "+")
	}
	return "https://www.google.com/maps/dir/" + strings.Join(segments, "/")
}
