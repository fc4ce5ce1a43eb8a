package turnaround

import (
	"time"
)

// EventTimeSet is the working unit for one flight's operational events - a
// reference date plus whatever subset of the event vocabulary was recorded.
// Constructed fresh per request and never mutated; resolution and adjustment
// both return derived sets
type EventTimeSet struct {
	ReferenceDate time.Time

	Events map[EventName]TimeOfDay
}

// ResolvedEventTimeSet binds each recorded time of day to the reference date.
// Events map to nil when the time of day was missing
type ResolvedEventTimeSet struct {
	ReferenceDate time.Time

	Events map[EventName]*time.Time
}

func (set EventTimeSet) Resolve() ResolvedEventTimeSet {
	resolved := ResolvedEventTimeSet{
		ReferenceDate: set.ReferenceDate,
		Events:        map[EventName]*time.Time{},
	}

	for event, timeOfDay := range set.Events {
		resolved.Events[event] = timeOfDay.Resolve(set.ReferenceDate)
	}

	return resolved
}

func (set ResolvedEventTimeSet) presentTimes() []time.Time {
	var times []time.Time

	for _, eventTime := range set.Events {
		if eventTime != nil {
			times = append(times, *eventTime)
		}
	}

	return times
}
