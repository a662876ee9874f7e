package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/mifrandir/fluctour/internal/geo"
	"github.com/mifrandir/fluctour/internal/maps"
)

type stubMaps struct {
	apiKey string
}

func (s *stubMaps) Geocode(_ context.Context, location string) (maps.Place, error) {
	coords := map[string]float64{"Alpha": 0, "Omega": 6}
	lng, ok := coords[location]
	if !ok {
		return maps.Place{}, fmt.Errorf("%w: %s", maps.ErrNotFound, location)
	}
	return maps.Place{FormattedAddress: location + " Address", Lng: lng, PlaceID: "pid-" + location}, nil
}

func (s *stubMaps) NearbySearch(_ context.Context, _ geo.Point, _ int) ([]maps.Place, error) {
	return nil, nil
}

func (s *stubMaps) Directions(_ context.Context, _, _ geo.Point) (maps.Leg, error) {
	return maps.Leg{DistanceText: "667 km", DurationText: "6 hours"}, nil
}

func withStubMaps(t *testing.T) *stubMaps {
	t.Helper()
	stub := &stubMaps{}
	orig := newMapsAPI
	newMapsAPI = func(apiKey string) maps.API {
		stub.apiKey = apiKey
		return stub
	}
	t.Cleanup(func() { newMapsAPI = orig })
	return stub
}

func TestRunPrintsItinerary(t *testing.T) {
	stub := withStubMaps(t)

	var out bytes.Buffer
	err := run([]string{
		"-start", "Alpha",
		"-end", "Omega",
		"-start-date", "2025-08-03",
		"-end-date", "2025-08-10",
		"-api-key", "cli-key",
	}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if stub.apiKey != "cli-key" {
		t.Fatalf("api key = %q, want flag value", stub.apiKey)
	}
	text := out.String()
	for _, want := range []string{"TRAVEL ITINERARY", "From: Alpha", "667 km", "Have a great trip!"} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
}

func TestRunMissingFlags(t *testing.T) {
	withStubMaps(t)

	var out bytes.Buffer
	if err := run([]string{"-start", "Alpha"}, &out); err == nil {
		t.Fatalf("want error for missing required flags")
	}
}

func TestRunBadDate(t *testing.T) {
	withStubMaps(t)

	var out bytes.Buffer
	err := run([]string{
		"-start", "Alpha",
		"-end", "Omega",
		"-start-date", "03/08/2025",
		"-end-date", "2025-08-10",
		"-api-key", "cli-key",
	}, &out)
	if err == nil || !strings.Contains(err.Error(), "start date") {
		t.Fatalf("want start date error, got %v", err)
	}
}

func TestRunUnknownLocation(t *testing.T) {
	withStubMaps(t)

	var out bytes.Buffer
	err := run([]string{
		"-start", "Nowhere",
		"-end", "Omega",
		"-start-date", "2025-08-03",
		"-end-date", "2025-08-10",
		"-api-key", "cli-key",
	}, &out)
	if err == nil {
		t.Fatalf("want error for unknown start location")
	}
}

func TestResolveAPIKey(t *testing.T) {
	t.Setenv("GOOGLE_MAPS_API_KEY", "")

	if _, err := resolveAPIKey(""); err == nil {
		t.Fatalf("want error when no key is available")
	}

	if key, err := resolveAPIKey("flag-key"); err != nil || key != "flag-key" {
		t.Fatalf("key = %q, err = %v", key, err)
	}

	t.Setenv("GOOGLE_MAPS_API_KEY", "env-key")
	if key, err := resolveAPIKey(""); err != nil || key != "env-key" {
		t.Fatalf("key = %q, err = %v", key, err)
	}
}

func TestParseLocations(t *testing.T) {
	got := parseLocations(" Hamburg , , Berlin,")
	if len(got) != 2 || got[0] != "Hamburg" || got[1] != "Berlin" {
		t.Fatalf("parsed = %v", got)
	}
	if parseLocations("") != nil {
		t.Fatalf("empty input should parse to nil")
	}
}
