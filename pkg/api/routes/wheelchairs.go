package routes

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/turnlog/turnlog/pkg/stats/calculator"
)

func WheelchairsRouter(router fiber.Router) {
	router.Get("/", getWheelchairs)
}

func getWheelchairs(c *fiber.Ctx) error {
	now := time.Now()

	dateStart := c.Query("date_start", now.AddDate(0, 0, -7).Format("2006-01-02"))
	dateEnd := c.Query("date_end", now.Format("2006-01-02"))

	var flightNumbers []string
	if flightNumbersQuery := c.Query("flight_numbers"); flightNumbersQuery != "" {
		flightNumbers = strings.Split(flightNumbersQuery, ",")
	}

	return c.JSON(calculator.GetWheelchairs(dateStart, dateEnd, flightNumbers))
}
