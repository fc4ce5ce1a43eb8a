package routes

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"
	"github.com/turnlog/turnlog/pkg/database"
	"github.com/turnlog/turnlog/pkg/turnaround"
	"go.mongodb.org/mongo-driver/bson"
)

func TimelineRouter(router fiber.Router) {
	router.Get("/", getTimeline)
	router.Get("/average", getAverageTimeline)
}

func getTimeline(c *fiber.Ctx) error {
	identifier := c.Query("identifier")

	if identifier == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "A report identifier must be applied to the request",
		})
	}

	turnaroundReport := findReport(identifier)

	if turnaroundReport == nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Report matching Report Identifier",
		})
	}

	eventTimeSet, err := turnaroundReport.EventTimeSet()
	if err != nil {
		c.SendStatus(fiber.StatusUnprocessableEntity)
		return c.JSON(fiber.Map{
			"error": "Report has no usable flight date",
		})
	}

	timeline := turnaround.GenerateTimeline(eventTimeSet)

	timelineReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, timeline)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce timeline",
		})
	}

	return c.JSON(timelineReduced)
}

func getAverageTimeline(c *fiber.Ctx) error {
	query := bson.M{}

	if flightNumbers := c.Query("flight_numbers"); flightNumbers != "" {
		query["flightnumber"] = bson.M{"$in": strings.Split(flightNumbers, ",")}
	}

	dateStart := c.Query("date_start")
	dateEnd := c.Query("date_end")
	if dateStart != "" || dateEnd != "" {
		dateRange := bson.M{}
		if dateStart != "" {
			dateRange["$gte"] = dateStart
		}
		if dateEnd != "" {
			dateRange["$lte"] = dateEnd
		}
		query["flightdate"] = dateRange
	}

	var eventTimeSets []turnaround.EventTimeSet

	reportsCollection := database.GetCollection("turnaround_reports")
	cursor, _ := reportsCollection.Find(context.Background(), query)

	for cursor.Next(context.TODO()) {
		var turnaroundReport turnaround.TurnaroundReport
		if err := cursor.Decode(&turnaroundReport); err != nil {
			log.Error().Err(err).Msg("Failed to decode turnaround report")
			continue
		}

		eventTimeSet, err := turnaroundReport.EventTimeSet()
		if err != nil {
			continue
		}

		eventTimeSets = append(eventTimeSets, eventTimeSet)
	}

	timeline := turnaround.GenerateAverageTimeline(eventTimeSets)

	timelineReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, timeline)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce timeline",
		})
	}

	return c.JSON(fiber.Map{
		"flights":  len(eventTimeSets),
		"timeline": timelineReduced,
	})
}
