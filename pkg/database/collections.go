package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func createIndexes() {
	createTurnaroundReportsIndexes()
}

func createTurnaroundReportsIndexes() {
	reportsCollection := GetCollection("turnaround_reports")
	reportsIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "primaryidentifier", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "flightdate", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "flightnumber", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "creationdatetime", Value: -1}},
		},
	}

	opts := options.CreateIndexes()
	_, err := reportsCollection.Indexes().CreateMany(context.Background(), reportsIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
