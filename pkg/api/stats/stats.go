package stats

import (
	"time"

	"github.com/sourcegraph/conc"
	"github.com/turnlog/turnlog/pkg/stats/calculator"
)

type RecordsStats struct {
	Reports              calculator.ReportsStats
	WheelchairsLast7Days calculator.WheelchairsStats

	Timestamp time.Time
}

var CurrentRecordsStats *RecordsStats

// UpdateRecordsStats recalculates the stats snapshot every minute. Run in a
// goroutine alongside the web server
func UpdateRecordsStats() {
	CurrentRecordsStats = &RecordsStats{}

	for {
		var reportsStats calculator.ReportsStats
		var wheelchairsStats calculator.WheelchairsStats

		now := time.Now()
		weekAgo := now.AddDate(0, 0, -7)

		var waitGroup conc.WaitGroup
		waitGroup.Go(func() {
			reportsStats = calculator.GetReports()
		})
		waitGroup.Go(func() {
			wheelchairsStats = calculator.GetWheelchairs(
				weekAgo.Format("2006-01-02"), now.Format("2006-01-02"), nil,
			)
		})
		waitGroup.Wait()

		CurrentRecordsStats = &RecordsStats{
			Reports:              reportsStats,
			WheelchairsLast7Days: wheelchairsStats,
			Timestamp:            now,
		}

		time.Sleep(1 * time.Minute)
	}
}
