package archive

import (
	"encoding/json"

	"github.com/adjust/rmq/v5"
	"github.com/rs/zerolog/log"
	"github.com/turnlog/turnlog/pkg/redis_client"
	"github.com/turnlog/turnlog/pkg/turnaround"
)

const QueueName = "turnaround-reports-archive"

var publishQueue rmq.Queue

// PublishReport puts a freshly submitted report onto the archive queue for
// the archiver process to mirror into BigQuery. Failures are logged, not
// returned - archival must never block a crew member's submission
func PublishReport(report turnaround.TurnaroundReport) {
	if redis_client.QueueConnection == nil {
		return
	}

	if publishQueue == nil {
		var err error
		publishQueue, err = redis_client.QueueConnection.OpenQueue(QueueName)
		if err != nil {
			log.Error().Err(err).Msg("Failed to open archive queue")
			return
		}
	}

	payload, err := json.Marshal(report)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal report for archive queue")
		return
	}

	if err := publishQueue.PublishBytes(payload); err != nil {
		log.Error().Err(err).Str("identifier", report.PrimaryIdentifier).Msg("Failed to publish report to archive queue")
	}
}
