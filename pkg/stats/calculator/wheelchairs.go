package calculator

import (
	"context"

	"github.com/turnlog/turnlog/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type WheelchairsStats struct {
	Reports int

	ArrivalChairs   int
	ArrivalAgents   int
	DepartureChairs int
	DepartureAgents int

	ByFlightNumber map[string]WheelchairsFlightStats
}

type WheelchairsFlightStats struct {
	Reports int

	ArrivalChairs   int
	ArrivalAgents   int
	DepartureChairs int
	DepartureAgents int
}

// GetWheelchairs sums the wheelchair and agent counts over a flight date
// range, optionally restricted to a set of flight numbers
func GetWheelchairs(startDate string, endDate string, flightNumbers []string) WheelchairsStats {
	stats := WheelchairsStats{
		ByFlightNumber: map[string]WheelchairsFlightStats{},
	}

	reportsCollection := database.GetCollection("turnaround_reports")

	match := bson.M{
		"flightdate": bson.M{"$gte": startDate, "$lte": endDate},
	}
	if len(flightNumbers) > 0 {
		match["flightnumber"] = bson.M{"$in": flightNumbers}
	}

	aggregation := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{
			{Key: "$group",
				Value: bson.D{
					{Key: "_id", Value: "$flightnumber"},
					{Key: "reports", Value: bson.D{{Key: "$sum", Value: 1}}},
					{Key: "arrivalchairs", Value: bson.D{{Key: "$sum", Value: "$wheelchairsarrival"}}},
					{Key: "arrivalagents", Value: bson.D{{Key: "$sum", Value: "$agentsarrival"}}},
					{Key: "departurechairs", Value: bson.D{{Key: "$sum", Value: "$wheelchairsdeparture"}}},
					{Key: "departureagents", Value: bson.D{{Key: "$sum", Value: "$agentsdeparture"}}},
				},
			},
		},
	}

	var result []bson.M
	cursor, _ := reportsCollection.Aggregate(context.Background(), aggregation)
	cursor.All(context.Background(), &result)

	for _, record := range result {
		flightNumber, ok := record["_id"].(string)
		if !ok {
			continue
		}

		flightStats := WheelchairsFlightStats{
			Reports:         toInt(record["reports"]),
			ArrivalChairs:   toInt(record["arrivalchairs"]),
			ArrivalAgents:   toInt(record["arrivalagents"]),
			DepartureChairs: toInt(record["departurechairs"]),
			DepartureAgents: toInt(record["departureagents"]),
		}

		stats.ByFlightNumber[flightNumber] = flightStats

		stats.Reports += flightStats.Reports
		stats.ArrivalChairs += flightStats.ArrivalChairs
		stats.ArrivalAgents += flightStats.ArrivalAgents
		stats.DepartureChairs += flightStats.DepartureChairs
		stats.DepartureAgents += flightStats.DepartureAgents
	}

	return stats
}
