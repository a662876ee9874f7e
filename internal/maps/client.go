package maps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/mifrandir/fluctour/internal/geo"
)

// ErrNotFound is returned when a location string does not geocode.
var ErrNotFound = errors.New("location not found")

// Place types queried by NearbySearch, and how many results to keep per type.
var searchPlaceTypes = []string{"tourist_attraction", "museum", "park", "point_of_interest"}

const resultsPerType = 5

// Client calls the Google Maps web-service JSON endpoints.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: "https://maps.googleapis.com",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Geocode resolves a free-text location into a Place. Returns ErrNotFound
// when the text does not resolve to any result.
func (c *Client) Geocode(ctx context.Context, location string) (Place, error) {
	q := url.Values{}
	q.Set("address", location)

	var resp geocodeResponse
	if err := c.get(ctx, "/maps/api/geocode/json", q, &resp); err != nil {
		return Place{}, err
	}
	if resp.Status == "ZERO_RESULTS" || len(resp.Results) == 0 {
		return Place{}, fmt.Errorf("%w: %s", ErrNotFound, location)
	}
	if resp.Status != "OK" {
		return Place{}, fmt.Errorf("geocode %q: status %s", location, resp.Status)
	}

	r := resp.Results[0]
	return Place{
		FormattedAddress: r.FormattedAddress,
		Lat:              r.Geometry.Location.Lat,
		Lng:              r.Geometry.Location.Lng,
		PlaceID:          r.PlaceID,
		Types:            r.Types,
	}, nil
}

// NearbySearch finds rated places around a point. It queries each place
// type in searchPlaceTypes, keeps the top results per type, dedupes by
// place ID, and returns the merged list sorted by rating descending then
// place ID, so identical responses always yield identical ordering.
// Per-type request failures are skipped.
func (c *Client) NearbySearch(ctx context.Context, center geo.Point, radiusM int) ([]Place, error) {
	seen := map[string]bool{}
	var places []Place

	for _, placeType := range searchPlaceTypes {
		q := url.Values{}
		q.Set("location", formatLatLng(center))
		q.Set("radius", fmt.Sprintf("%d", radiusM))
		q.Set("type", placeType)

		var resp nearbyResponse
		if err := c.get(ctx, "/maps/api/place/nearbysearch/json", q, &resp); err != nil {
			log.Printf("nearby search for %s failed: %v", placeType, err)
			continue
		}
		if resp.Status != "OK" && resp.Status != "ZERO_RESULTS" {
			log.Printf("nearby search for %s: status %s", placeType, resp.Status)
			continue
		}

		results := resp.Results
		if len(results) > resultsPerType {
			results = results[:resultsPerType]
		}
		for _, r := range results {
			if seen[r.PlaceID] {
				continue
			}
			seen[r.PlaceID] = true
			address := r.Vicinity
			if address == "" {
				address = r.Name
			}
			places = append(places, Place{
				Name:             r.Name,
				FormattedAddress: address,
				Lat:              r.Geometry.Location.Lat,
				Lng:              r.Geometry.Location.Lng,
				PlaceID:          r.PlaceID,
				Types:            r.Types,
				Rating:           r.Rating,
				SearchType:       placeType,
			})
		}
	}

	sort.Slice(places, func(i, j int) bool {
		if places[i].Rating != places[j].Rating {
			return places[i].Rating > places[j].Rating
		}
		return places[i].PlaceID < places[j].PlaceID
	})
	return places, nil
}

// Directions returns the travel summary of the first leg of the first
// driving route between two coordinates.
func (c *Client) Directions(ctx context.Context, origin, dest geo.Point) (Leg, error) {
	q := url.Values{}
	q.Set("origin", formatLatLng(origin))
	q.Set("destination", formatLatLng(dest))
	q.Set("mode", "driving")

	var resp directionsResponse
	if err := c.get(ctx, "/maps/api/directions/json", q, &resp); err != nil {
		return Leg{}, err
	}
	if resp.Status != "OK" || len(resp.Routes) == 0 || len(resp.Routes[0].Legs) == 0 {
		return Leg{}, fmt.Errorf("directions %s -> %s: no route (status %s)", formatLatLng(origin), formatLatLng(dest), resp.Status)
	}

	leg := resp.Routes[0].Legs[0]
	return Leg{
		DistanceText: leg.Distance.Text,
		DurationText: leg.Duration.Text,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("maps API error %d: %s", resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func formatLatLng(p geo.Point) string {
	return fmt.Sprintf("%.6f,%.6f", p.Lat, p.Lng)
}

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type geometry struct {
	Location latLng `json:"location"`
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string   `json:"formatted_address"`
		Geometry         geometry `json:"geometry"`
		PlaceID          string   `json:"place_id"`
		Types            []string `json:"types"`
	} `json:"results"`
}

type nearbyResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Name     string   `json:"name"`
		Geometry geometry `json:"geometry"`
		PlaceID  string   `json:"place_id"`
		Rating   float64  `json:"rating"`
		Types    []string `json:"types"`
		Vicinity string   `json:"vicinity"`
	} `json:"results"`
}

type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		Legs []struct {
			Distance struct {
				Text string `json:"text"`
			} `json:"distance"`
			Duration struct {
				Text string `json:"text"`
			} `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
}
