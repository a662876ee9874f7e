package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/mifrandir/fluctour/internal/itinerary"
	"github.com/mifrandir/fluctour/internal/maps"
	"github.com/mifrandir/fluctour/internal/render"
)

const dateFormat = "2006-01-02"

var newMapsAPI = func(apiKey string) maps.API {
	return maps.NewClient(apiKey)
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("plan", flag.ContinueOnError)
	fs.SetOutput(out)
	start := fs.String("start", "", "start location")
	end := fs.String("end", "", "end location")
	startDate := fs.String("start-date", "", "trip start date (YYYY-MM-DD)")
	endDate := fs.String("end-date", "", "trip end date (YYYY-MM-DD)")
	locations := fs.String("locations", "", "comma-separated locations to include as stops")
	maxStops := fs.Int("max-stops", 5, "maximum number of intermediate stops")
	minStay := fs.Int("min-stay", 1, "minimum days per location")
	apiKey := fs.String("api-key", "", "Google Maps API key")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *start == "" || *end == "" || *startDate == "" || *endDate == "" {
		return errors.New("start, end, start-date and end-date are required")
	}

	from, err := time.Parse(dateFormat, *startDate)
	if err != nil {
		return fmt.Errorf("invalid start date %q: must be YYYY-MM-DD", *startDate)
	}
	until, err := time.Parse(dateFormat, *endDate)
	if err != nil {
		return fmt.Errorf("invalid end date %q: must be YYYY-MM-DD", *endDate)
	}

	key, err := resolveAPIKey(*apiKey)
	if err != nil {
		return err
	}

	svc := itinerary.NewService(newMapsAPI(key))
	it, err := svc.Generate(context.Background(), itinerary.Request{
		Start:       *start,
		End:         *end,
		StartDate:   from,
		EndDate:     until,
		Constraints: parseLocations(*locations),
		MaxStops:    *maxStops,
		MinStay:     *minStay,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, render.Text(it))
	return nil
}

// resolveAPIKey checks the flag, then the environment, then a .env file.
func resolveAPIKey(provided string) (string, error) {
	if provided != "" {
		return provided, nil
	}
	if key := os.Getenv("GOOGLE_MAPS_API_KEY"); key != "" {
		return key, nil
	}
	_ = godotenv.Load()
	if key := os.Getenv("GOOGLE_MAPS_API_KEY"); key != "" {
		return key, nil
	}
	return "", errors.New("Google Maps API key not found: pass -api-key, set GOOGLE_MAPS_API_KEY, or add it to a .env file")
}

func parseLocations(s string) []string {
	if s == "" {
		return nil
	}
	var locations []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			locations = append(locations, trimmed)
		}
	}
	return locations
}
