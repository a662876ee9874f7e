package server

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mifrandir/fluctour/internal/config"
	"github.com/mifrandir/fluctour/internal/itinerary"
	"github.com/mifrandir/fluctour/internal/maps"
)

func TestHealthRoute(t *testing.T) {
	s := NewServer(config.Config{ServerPort: ":0"}, itinerary.NewService(maps.NewClient("")))

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := s.App.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200 status")
	}
}

func TestItineraryRouteMounted(t *testing.T) {
	s := NewServer(config.Config{ServerPort: ":0"}, itinerary.NewService(maps.NewClient("")))

	req := httptest.NewRequest("POST", "/itineraries/", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.App.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400 for empty itinerary request, got %d", resp.StatusCode)
	}
}
