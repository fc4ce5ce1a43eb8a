package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/adjust/rmq/v5"
	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/turnlog/turnlog/pkg/elastic_client"
	"github.com/turnlog/turnlog/pkg/redis_client"
	"github.com/turnlog/turnlog/pkg/turnaround"
	"github.com/turnlog/turnlog/pkg/util"
)

const numConsumers = 2

// ArchivedReport is the flattened row shape pushed into the warehouse.
// Event times are archived both as recorded (clock strings) and as the
// resolved timeline, so analysts never have to re-run crossover logic in SQL
type ArchivedReport struct {
	PrimaryIdentifier string    `bigquery:"primary_identifier"`
	CreationDateTime  time.Time `bigquery:"creation_datetime"`

	FlightDate   string `bigquery:"flight_date"`
	FlightNumber string `bigquery:"flight_number"`
	Origin       string `bigquery:"origin"`
	Destination  string `bigquery:"destination"`

	Gate      string `bigquery:"gate"`
	Carrousel string `bigquery:"carrousel"`

	Events []ArchivedReportEvent `bigquery:"events"`

	PaxTotal int `bigquery:"pax_total"`
	Infants  int `bigquery:"infants"`

	WheelchairsArrival   int `bigquery:"wheelchairs_arrival"`
	WheelchairsDeparture int `bigquery:"wheelchairs_departure"`

	DelayMinutes int    `bigquery:"delay_minutes"`
	DelayCode    string `bigquery:"delay_code"`
}

type ArchivedReportEvent struct {
	Event    string    `bigquery:"event"`
	Recorded string    `bigquery:"recorded"`
	Resolved time.Time `bigquery:"resolved"`
}

type Archiver struct {
	bigqueryClient   *bigquery.Client
	bigqueryInserter *bigquery.Inserter
}

func NewArchiver() (*Archiver, error) {
	env := util.GetEnvironmentVariables()

	project := env["TURNLOG_BIGQUERY_PROJECT"]
	dataset := env["TURNLOG_BIGQUERY_DATASET"]
	table := env["TURNLOG_BIGQUERY_TABLE"]

	if dataset == "" {
		dataset = "turnlog"
	}
	if table == "" {
		table = "turnaround_reports"
	}

	archiver := &Archiver{}

	if project == "" {
		log.Info().Msg("Skipping BigQuery setup")
	} else {
		client, err := bigquery.NewClient(context.Background(), project)
		if err != nil {
			return nil, err
		}

		archiver.bigqueryClient = client
		archiver.bigqueryInserter = client.Dataset(dataset).Table(table).Inserter()

		log.Info().Str("project", project).Str("dataset", dataset).Str("table", table).Msg("BigQuery client setup")
	}

	return archiver, nil
}

func (a *Archiver) StartConsumers() {
	log.Info().Msg("Starting archive consumers")

	queue, err := redis_client.QueueConnection.OpenQueue(QueueName)
	if err != nil {
		panic(err)
	}
	if err := queue.StartConsuming(numConsumers*10, 1*time.Second); err != nil {
		panic(err)
	}

	for i := 0; i < numConsumers; i++ {
		if _, err := queue.AddConsumer(fmt.Sprintf("%s-%d", QueueName, i), NewConsumer(a)); err != nil {
			panic(err)
		}
	}
}

type Consumer struct {
	archiver *Archiver
}

func NewConsumer(archiver *Archiver) *Consumer {
	return &Consumer{archiver: archiver}
}

func (consumer *Consumer) Consume(delivery rmq.Delivery) {
	var report turnaround.TurnaroundReport
	if err := json.Unmarshal([]byte(delivery.Payload()), &report); err != nil {
		log.Error().Err(err).Msg("Failed to decode queued report")
		if err := delivery.Reject(); err != nil {
			log.Error().Err(err).Msg("Failed to reject queued report")
		}
		return
	}

	if os.Getenv("TURNLOG_DEBUG") == "YES" {
		pretty.Println(report)
	}

	if err := consumer.archiver.Archive(report); err != nil {
		log.Error().Err(err).Str("identifier", report.PrimaryIdentifier).Msg("Failed to archive report")
		if err := delivery.Reject(); err != nil {
			log.Error().Err(err).Msg("Failed to reject queued report")
		}
		return
	}

	if err := delivery.Ack(); err != nil {
		log.Error().Err(err).Msg("Failed to ack queued report")
	}
}

// Archive mirrors a report into BigQuery and the search index
func (a *Archiver) Archive(report turnaround.TurnaroundReport) error {
	row := archivedRow(report)

	if a.bigqueryInserter != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := a.bigqueryInserter.Put(ctx, row); err != nil {
			return err
		}
	}

	indexDocument, err := json.Marshal(row)
	if err != nil {
		return err
	}

	year, week := report.CreationDateTime.ISOWeek()
	indexName := fmt.Sprintf("turnaround-reports-%d-%d", year, week)

	elastic_client.IndexRequest(indexName, bytes.NewReader(indexDocument))

	log.Info().Str("identifier", report.PrimaryIdentifier).Msg("Archived report")

	return nil
}

func archivedRow(report turnaround.TurnaroundReport) ArchivedReport {
	row := ArchivedReport{
		PrimaryIdentifier: report.PrimaryIdentifier,
		CreationDateTime:  report.CreationDateTime,

		FlightDate:   report.FlightDate,
		FlightNumber: report.FlightNumber,
		Origin:       report.Origin,
		Destination:  report.Destination,

		Gate:      report.Gate,
		Carrousel: report.Carrousel,

		PaxTotal: report.PaxTotal,
		Infants:  report.Infants,

		WheelchairsArrival:   report.WheelchairsArrival,
		WheelchairsDeparture: report.WheelchairsDeparture,

		DelayMinutes: report.DelayMinutes,
		DelayCode:    report.DelayCode,
	}

	eventTimeSet, err := report.EventTimeSet()
	if err != nil {
		log.Warn().Err(err).Str("identifier", report.PrimaryIdentifier).Msg("Archiving report without resolved event times")
	}

	var resolved turnaround.ResolvedEventTimeSet
	if err == nil {
		resolved = turnaround.AdjustMidnightCrossover(eventTimeSet.Resolve())
	}

	recorded := report.RecordedTimes()
	for _, event := range turnaround.EventSequence {
		archivedEvent := ArchivedReportEvent{
			Event:    string(event),
			Recorded: recorded[event],
		}

		if resolvedTime := resolved.Events[event]; resolvedTime != nil {
			archivedEvent.Resolved = *resolvedTime
		}

		row.Events = append(row.Events, archivedEvent)
	}

	return row
}
