package routes

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"
	"github.com/turnlog/turnlog/pkg/archive"
	"github.com/turnlog/turnlog/pkg/database"
	"github.com/turnlog/turnlog/pkg/report"
	"github.com/turnlog/turnlog/pkg/turnaround"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	iso8601 "github.com/senseyeio/duration"
)

func ReportsRouter(router fiber.Router) {
	router.Post("/", createReport)
	router.Get("/", listReports)
	router.Get("/filters", getReportFilters)
	router.Get("/:identifier", getReport)
	router.Get("/:identifier/text", getReportText)
}

func createReport(c *fiber.Ctx) error {
	var turnaroundReport turnaround.TurnaroundReport
	if err := c.BodyParser(&turnaroundReport); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Request body must be a turnaround report",
		})
	}

	if turnaroundReport.FlightNumber == "" || turnaroundReport.FlightDate == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "A report requires a flight number and flight date",
		})
	}

	if _, err := turnaround.ParseReferenceDate(turnaroundReport.FlightDate); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Flight date must be formatted YYYY-MM-DD",
		})
	}

	now := time.Now()
	turnaroundReport.CreationDateTime = now
	turnaroundReport.ModificationDateTime = now
	turnaroundReport.GenerateIdentifier()

	reportsCollection := database.GetCollection("turnaround_reports")
	if _, err := reportsCollection.InsertOne(context.Background(), turnaroundReport); err != nil {
		log.Error().Err(err).Msg("Failed to insert turnaround report")

		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not save report",
		})
	}

	archive.PublishReport(turnaroundReport)

	c.SendStatus(fiber.StatusCreated)
	return c.JSON(fiber.Map{
		"primaryidentifier": turnaroundReport.PrimaryIdentifier,
	})
}

func listReports(c *fiber.Ctx) error {
	count, err := strconv.Atoi(c.Query("count", "50"))
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter count should be an integer",
		})
	}

	query := bson.M{}

	if flightDate := c.Query("flight_date"); flightDate != "" {
		query["flightdate"] = flightDate
	}
	if flightNumber := c.Query("flight_number"); flightNumber != "" {
		query["flightnumber"] = flightNumber
	}

	if createdAt := c.Query("created_at"); createdAt != "" {
		dayStart, err := time.Parse("2006-01-02", createdAt)
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter created_at should be formatted YYYY-MM-DD",
			})
		}

		nextDayDuration, _ := iso8601.ParseISO8601("P1D")
		dayEnd := nextDayDuration.Shift(dayStart)

		query["creationdatetime"] = bson.M{"$gte": dayStart, "$lt": dayEnd}
	}

	reports := []turnaround.TurnaroundReport{}

	reportsCollection := database.GetCollection("turnaround_reports")
	findOptions := options.Find().
		SetSort(bson.D{{Key: "creationdatetime", Value: -1}}).
		SetLimit(int64(count))
	cursor, _ := reportsCollection.Find(context.Background(), query, findOptions)

	for cursor.Next(context.TODO()) {
		var turnaroundReport turnaround.TurnaroundReport
		if err := cursor.Decode(&turnaroundReport); err != nil {
			log.Error().Err(err).Msg("Failed to decode turnaround report")
			continue
		}

		reports = append(reports, turnaroundReport)
	}

	reportsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, reports)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce reports",
		})
	}

	return c.JSON(reportsReduced)
}

func getReportFilters(c *fiber.Ctx) error {
	reportsCollection := database.GetCollection("turnaround_reports")

	flightDates, _ := reportsCollection.Distinct(context.Background(), "flightdate", bson.D{})
	flightNumbers, _ := reportsCollection.Distinct(context.Background(), "flightnumber", bson.D{})

	return c.JSON(fiber.Map{
		"flight_dates":   flightDates,
		"flight_numbers": flightNumbers,
	})
}

func findReport(identifier string) *turnaround.TurnaroundReport {
	reportsCollection := database.GetCollection("turnaround_reports")

	var turnaroundReport *turnaround.TurnaroundReport
	reportsCollection.FindOne(context.Background(), bson.M{"primaryidentifier": identifier}).Decode(&turnaroundReport)

	return turnaroundReport
}

func getReport(c *fiber.Ctx) error {
	turnaroundReport := findReport(c.Params("identifier"))

	if turnaroundReport == nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Report matching Report Identifier",
		})
	}

	return c.JSON(turnaroundReport)
}

func getReportText(c *fiber.Ctx) error {
	turnaroundReport := findReport(c.Params("identifier"))

	if turnaroundReport == nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Report matching Report Identifier",
		})
	}

	pairings := report.LoadFlightPairings()

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(report.GenerateText(*turnaroundReport, pairings))
}
