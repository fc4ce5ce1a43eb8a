package routes

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/turnlog/turnlog/pkg/flightstatus"
)

var flightStatusClient *flightstatus.Client

func FlightsRouter(router fiber.Router) {
	flightStatusClient = flightstatus.NewClient(flightstatus.NewCache(15 * time.Minute))

	router.Get("/:number/status", getFlightStatus)
}

func getFlightStatus(c *fiber.Ctx) error {
	flightNumber := c.Params("number")
	departureDate := c.Query("date")

	legs, err := flightStatusClient.Lookup(c.Context(), flightNumber, departureDate)
	if err != nil {
		if errors.Is(err, flightstatus.ErrFlightNotFound) {
			c.SendStatus(fiber.StatusNotFound)
			return c.JSON(fiber.Map{
				"error": "Could not find status for flight",
			})
		}

		c.SendStatus(fiber.StatusBadGateway)
		return c.JSON(fiber.Map{
			"error": "Flight status lookup failed",
		})
	}

	legsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, legs)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce flight legs",
		})
	}

	return c.JSON(legsReduced)
}
