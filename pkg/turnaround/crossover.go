package turnaround

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

const (
	overnightEarlyThresholdMinutes = 20 * 60 // 20:00
	overnightLateThresholdMinutes  = 4 * 60  // 04:00
)

// AdjustMidnightCrossover corrects events whose recorded clock time landed on
// the wrong side of midnight relative to the turnaround's operational window.
//
// The role heuristic runs first: if the early phase events average later in
// the day than the late phase events (early past 20:00, late before 04:00)
// the flight is overnight, and every late phase event before noon is shifted
// forward a day. Any event the role rule didn't touch falls back to the
// generic rule - more than 12 hours away from the first recorded event of
// the canonical sequence means it belongs on the other side of a day
// boundary.
//
// Missing events pass through as nil. The input set is not modified
func AdjustMidnightCrossover(set ResolvedEventTimeSet) ResolvedEventTimeSet {
	adjusted := ResolvedEventTimeSet{
		ReferenceDate: set.ReferenceDate,
		Events:        map[EventName]*time.Time{},
	}

	validTimes := set.presentTimes()
	if len(validTimes) == 0 {
		for event, eventTime := range set.Events {
			adjusted.Events[event] = eventTime
		}
		return adjusted
	}

	var earlyTimes []time.Time
	var lateTimes []time.Time

	for _, event := range earlyPhaseEvents {
		if eventTime := set.Events[event]; eventTime != nil {
			earlyTimes = append(earlyTimes, *eventTime)
		}
	}
	for _, event := range latePhaseEvents {
		if eventTime := set.Events[event]; eventTime != nil {
			lateTimes = append(lateTimes, *eventTime)
		}
	}

	isOvernight := false
	if len(earlyTimes) > 0 && len(lateTimes) > 0 {
		averageEarly := meanMinuteOfDay(earlyTimes)
		averageLate := meanMinuteOfDay(lateTimes)

		if averageEarly > averageLate &&
			averageEarly > overnightEarlyThresholdMinutes &&
			averageLate < overnightLateThresholdMinutes {
			isOvernight = true

			log.Info().
				Str("referencedate", set.ReferenceDate.Format(ReferenceDateFormat)).
				Float64("earlymean", averageEarly/60).
				Float64("latemean", averageLate/60).
				Msg("Detected overnight turnaround")
		}
	}

	// First pass - the role heuristic. Late phase events just after midnight
	// on an overnight turnaround belong to the next day
	roleCorrected := map[EventName]bool{}

	for event, eventTime := range set.Events {
		if eventTime == nil {
			adjusted.Events[event] = nil
			continue
		}

		if isOvernight && slices.Contains(latePhaseEvents, event) && eventTime.Hour() < 12 {
			shifted := eventTime.AddDate(0, 0, 1)
			adjusted.Events[event] = &shifted
			roleCorrected[event] = true

			log.Info().
				Str("event", string(event)).
				Time("from", *eventTime).
				Time("to", shifted).
				Msg("Shifted overnight event")
		} else {
			eventTimeCopy := *eventTime
			adjusted.Events[event] = &eventTimeCopy
		}
	}

	// Second pass - the generic gap rule for everything the role heuristic
	// left alone. The anchor is the first recorded event in canonical order,
	// the best guess of where the turnaround actually started. A chronological
	// minimum would pick a just-past-midnight departure and drag the whole
	// evening back a day
	anchorTime := time.Time{}
	for _, event := range EventSequence {
		if eventTime := adjusted.Events[event]; eventTime != nil {
			anchorTime = *eventTime
			break
		}
	}

	for event, eventTime := range adjusted.Events {
		if eventTime == nil || roleCorrected[event] {
			continue
		}

		hoursDiff := eventTime.Sub(anchorTime).Hours()
		if hoursDiff > 12 {
			shifted := eventTime.AddDate(0, 0, -1)
			adjusted.Events[event] = &shifted
		} else if hoursDiff < -12 {
			shifted := eventTime.AddDate(0, 0, 1)
			adjusted.Events[event] = &shifted
		}
	}

	return adjusted
}

func meanMinuteOfDay(times []time.Time) float64 {
	total := 0
	for _, t := range times {
		total += t.Hour()*60 + t.Minute()
	}

	return float64(total) / float64(len(times))
}
