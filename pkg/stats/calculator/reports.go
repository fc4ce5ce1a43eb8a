package calculator

import (
	"context"

	"github.com/turnlog/turnlog/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
)

type ReportsStats struct {
	Total int

	FlightNumbers map[string]int
	FlightDates   map[string]int
	DelayCodes    map[string]int

	Delayed int
}

func GetReports() ReportsStats {
	stats := ReportsStats{}
	reportsCollection := database.GetCollection("turnaround_reports")

	numberReports, _ := reportsCollection.CountDocuments(context.Background(), bson.D{})
	stats.Total = int(numberReports)

	stats.FlightNumbers = CountAggregate(reportsCollection, "$flightnumber")
	stats.FlightDates = CountAggregate(reportsCollection, "$flightdate")
	stats.DelayCodes = CountAggregate(reportsCollection, "$delaycode")

	numberDelayed, _ := reportsCollection.CountDocuments(context.Background(), bson.M{
		"delayminutes": bson.M{"$gt": 0},
	})
	stats.Delayed = int(numberDelayed)

	return stats
}
