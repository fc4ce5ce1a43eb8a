package calculator

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func CountAggregate(collection *mongo.Collection, aggregateKey string) map[string]int {
	countMap := map[string]int{}

	aggregation := mongo.Pipeline{
		bson.D{
			{Key: "$group",
				Value: bson.D{
					{Key: "_id", Value: aggregateKey},
					{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
				},
			},
		},
	}
	var result []bson.M
	cursor, _ := collection.Aggregate(context.Background(), aggregation)
	cursor.All(context.Background(), &result)

	for _, record := range result {
		key, ok := record["_id"].(string)
		if !ok {
			continue
		}

		countMap[key] = toInt(record["count"])
	}

	return countMap
}

// Mongo hands numbers back as whichever width it felt like
func toInt(value interface{}) int {
	switch v := value.(type) {
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}
