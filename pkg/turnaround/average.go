package turnaround

import (
	"sort"
	"time"

	"github.com/rs/zerolog/log"
)

const secondsPerDay = 24 * 60 * 60

// crossoverGapSeconds is the adjacent-sample gap beyond which a cohort of
// times for one event is considered to straddle midnight
const crossoverGapSeconds = 12 * 60 * 60

// AverageEventTimes collapses a cohort of flights into one representative
// time of day per event. Each flight's recorded times are resolved against
// its own reference date first; flights without a reference date are skipped.
//
// Averaging happens in the time-of-day domain so that cohorts spread over
// many calendar dates compare like with like. Samples for one event are
// sorted by clock time; a gap of more than 12 hours between neighbours marks
// the event as straddling midnight, and every sample past the gap is pulled
// back a full day (23:50 becomes -00:10, the evening before the after-midnight
// samples) so the cluster averages correctly. This is a linear stand-in for a
// circular mean - fine while the samples form one tight cluster, skewed if
// an event genuinely has two.
//
// Events with no samples at all are omitted from the result. The date
// component of each returned timestamp is an arbitrary anchor (the earliest
// sample's date) and carries no calendar meaning
func AverageEventTimes(sets []EventTimeSet) map[EventName]time.Time {
	eventTimes := map[EventName][]time.Time{}

	for _, set := range sets {
		if set.ReferenceDate.IsZero() {
			log.Warn().Msg("Skipping flight with no reference date from averaging")
			continue
		}

		resolved := set.Resolve()
		for _, event := range EventSequence {
			if eventTime := resolved.Events[event]; eventTime != nil {
				eventTimes[event] = append(eventTimes[event], *eventTime)
			}
		}
	}

	averageTimes := map[EventName]time.Time{}

	for event, times := range eventTimes {
		if len(times) == 0 {
			continue
		}

		secondsOfDay := make([]int, len(times))
		anchorDate := times[0]
		for i, t := range times {
			secondsOfDay[i] = t.Hour()*3600 + t.Minute()*60 + t.Second()

			if t.Before(anchorDate) {
				anchorDate = t
			}
		}
		sort.Ints(secondsOfDay)

		isOvernight := false
		for i := 0; i < len(secondsOfDay)-1; i++ {
			if secondsOfDay[i+1]-secondsOfDay[i] > crossoverGapSeconds {
				isOvernight = true
				break
			}
		}

		adjustedSeconds := secondsOfDay
		if isOvernight {
			log.Info().Str("event", string(event)).Msg("Averaging across a midnight crossover")

			// Compare against the already-adjusted neighbour so the whole
			// cluster past the gap comes back with it
			adjustedSeconds = make([]int, 0, len(secondsOfDay))
			for i, seconds := range secondsOfDay {
				if i > 0 && seconds-adjustedSeconds[i-1] > crossoverGapSeconds {
					adjustedSeconds = append(adjustedSeconds, seconds-secondsPerDay)
				} else {
					adjustedSeconds = append(adjustedSeconds, seconds)
				}
			}
		}

		total := 0
		for _, seconds := range adjustedSeconds {
			total += seconds
		}

		averageSeconds := total / len(adjustedSeconds)
		averageSeconds = ((averageSeconds % secondsPerDay) + secondsPerDay) % secondsPerDay

		averageTimes[event] = time.Date(
			anchorDate.Year(), anchorDate.Month(), anchorDate.Day(),
			averageSeconds/3600, (averageSeconds%3600)/60, averageSeconds%60, 0,
			anchorDate.Location(),
		)
	}

	return averageTimes
}
