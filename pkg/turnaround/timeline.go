package turnaround

import (
	"sort"
	"time"
)

// TimelineEntry is one event on a chronological turnaround timeline
type TimelineEntry struct {
	Event EventName `groups:"basic"`
	Label string    `groups:"basic"`
	Time  time.Time `groups:"basic"`

	// Gap since the previous entry on the timeline, zero for the first
	SincePrevious time.Duration `groups:"basic"`
}

var eventSequenceIndex = func() map[EventName]int {
	index := map[EventName]int{}
	for i, event := range EventSequence {
		index[event] = i
	}
	return index
}()

// GenerateTimeline resolves and midnight-adjusts one flight's events and
// returns them in chronological order with inter-event gaps. Events with no
// recorded time are left off the timeline. Events recorded at the same
// minute keep their canonical operational order
func GenerateTimeline(set EventTimeSet) []TimelineEntry {
	adjusted := AdjustMidnightCrossover(set.Resolve())

	return buildTimeline(adjusted.Events)
}

// GenerateAverageTimeline produces the cohort equivalent - one entry per
// event averaged across the given flights. The dates on the entries are
// anchor dates only
func GenerateAverageTimeline(sets []EventTimeSet) []TimelineEntry {
	averageTimes := AverageEventTimes(sets)

	events := map[EventName]*time.Time{}
	for event, eventTime := range averageTimes {
		eventTimeCopy := eventTime
		events[event] = &eventTimeCopy
	}

	return buildTimeline(events)
}

func buildTimeline(events map[EventName]*time.Time) []TimelineEntry {
	var entries []TimelineEntry

	for event, eventTime := range events {
		if eventTime == nil {
			continue
		}

		entries = append(entries, TimelineEntry{
			Event: event,
			Label: EventLabels[event],
			Time:  *eventTime,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Time.Equal(entries[j].Time) {
			return eventSequenceIndex[entries[i].Event] < eventSequenceIndex[entries[j].Event]
		}
		return entries[i].Time.Before(entries[j].Time)
	})

	for i := 1; i < len(entries); i++ {
		entries[i].SincePrevious = entries[i].Time.Sub(entries[i-1].Time)
	}

	return entries
}
