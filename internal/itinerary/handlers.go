package itinerary

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mifrandir/fluctour/internal/maps"
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Post("/", func(c *fiber.Ctx) error {
		var body struct {
			Start     string   `json:"start"`
			End       string   `json:"end"`
			StartDate string   `json:"start_date"`
			EndDate   string   `json:"end_date"`
			Locations []string `json:"locations"`
			MaxStops  *int     `json:"max_stops"`
			MinStay   *int     `json:"min_stay"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if body.Start == "" || body.End == "" || body.StartDate == "" || body.EndDate == "" {
			return fiber.NewError(fiber.StatusBadRequest, "start, end, start_date and end_date required")
		}

		startDate, err := time.Parse(dateFormat, body.StartDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "start_date must be YYYY-MM-DD")
		}
		endDate, err := time.Parse(dateFormat, body.EndDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "end_date must be YYYY-MM-DD")
		}

		maxStops := 5
		if body.MaxStops != nil {
			maxStops = *body.MaxStops
		}
		minStay := 1
		if body.MinStay != nil {
			minStay = *body.MinStay
		}

		it, err := svc.Generate(c.Context(), Request{
			Start:       body.Start,
			End:         body.End,
			StartDate:   startDate,
			EndDate:     endDate,
			Constraints: body.Locations,
			MaxStops:    maxStops,
			MinStay:     minStay,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidRequest) || errors.Is(err, maps.ErrNotFound) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":        uuid.NewString(),
			"itinerary": it,
		})
	})
}
