package turnaround

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEventTimeSet(t *testing.T, flightDate string, times map[EventName]string) EventTimeSet {
	referenceDate, err := ParseReferenceDate(flightDate)
	require.NoError(t, err)

	events := map[EventName]TimeOfDay{}
	for event, value := range times {
		events[event] = ParseTimeOfDay(value)
	}

	return EventTimeSet{
		ReferenceDate: referenceDate,
		Events:        events,
	}
}

func TestAdjustOvernightTurnaround(t *testing.T) {
	set := testEventTimeSet(t, "2024-01-10", map[EventName]string{
		EventGroomersIn:     "23:10",
		EventCrewAtGate:     "23:40",
		EventCierreDePuerta: "00:35",
		EventPushBack:       "00:40",
		EventATD:            "00:45",
	})

	adjusted := AdjustMidnightCrossover(set.Resolve())

	// Early phase events stay on the reference date
	assert.Equal(t, 10, adjusted.Events[EventGroomersIn].Day())
	assert.Equal(t, 10, adjusted.Events[EventCrewAtGate].Day())

	// Late phase events move to the next calendar day
	assert.Equal(t, 11, adjusted.Events[EventCierreDePuerta].Day())
	assert.Equal(t, 11, adjusted.Events[EventPushBack].Day())
	assert.Equal(t, 11, adjusted.Events[EventATD].Day())

	// The full sequence now ascends
	previous := *adjusted.Events[EventGroomersIn]
	for _, event := range []EventName{EventCrewAtGate, EventCierreDePuerta, EventPushBack, EventATD} {
		assert.True(t, adjusted.Events[event].After(previous), "expected %s after %s", event, previous)
		previous = *adjusted.Events[event]
	}
}

func TestAdjustLeavesDaytimeTurnaroundAlone(t *testing.T) {
	set := testEventTimeSet(t, "2024-01-10", map[EventName]string{
		EventGroomersIn:     "06:30",
		EventCrewAtGate:     "07:00",
		EventOkToBoard:      "07:20",
		EventCierreDePuerta: "07:50",
		EventPushBack:       "07:55",
		EventATD:            "08:01",
	})

	resolved := set.Resolve()
	adjusted := AdjustMidnightCrossover(resolved)

	for event, eventTime := range resolved.Events {
		require.NotNil(t, adjusted.Events[event])
		assert.True(t, eventTime.Equal(*adjusted.Events[event]), "expected %s unchanged", event)
	}
}

func TestAdjustFallbackGapRule(t *testing.T) {
	// No early phase events recorded, so the role heuristic cannot fire and
	// the generic gap rule has to untangle a departure just past midnight
	set := testEventTimeSet(t, "2024-01-10", map[EventName]string{
		EventSTD: "23:55",
		EventATD: "00:05",
	})

	adjusted := AdjustMidnightCrossover(set.Resolve())

	require.NotNil(t, adjusted.Events[EventSTD])
	require.NotNil(t, adjusted.Events[EventATD])

	// The scheduled departure stays put; the actual departure moves forward
	assert.Equal(t, 10, adjusted.Events[EventSTD].Day())
	assert.Equal(t, 11, adjusted.Events[EventATD].Day())
	assert.Equal(t, 10*time.Minute, adjusted.Events[EventATD].Sub(*adjusted.Events[EventSTD]))
}

func TestAdjustNullPropagation(t *testing.T) {
	set := testEventTimeSet(t, "2024-01-10", map[EventName]string{
		EventGroomersIn: "21:00",
		EventPushBack:   "",
		EventATD:        "garbage",
	})

	adjusted := AdjustMidnightCrossover(set.Resolve())

	assert.NotNil(t, adjusted.Events[EventGroomersIn])
	assert.Nil(t, adjusted.Events[EventPushBack])
	assert.Nil(t, adjusted.Events[EventATD])
}

func TestAdjustEmptySet(t *testing.T) {
	set := testEventTimeSet(t, "2024-01-10", map[EventName]string{
		EventPushBack: "",
	})

	adjusted := AdjustMidnightCrossover(set.Resolve())

	assert.Len(t, adjusted.Events, 1)
	assert.Nil(t, adjusted.Events[EventPushBack])
}

func TestAdjustDoesNotMutateInput(t *testing.T) {
	set := testEventTimeSet(t, "2024-01-10", map[EventName]string{
		EventGroomersIn:     "23:10",
		EventCrewAtGate:     "23:40",
		EventCierreDePuerta: "00:35",
	})

	resolved := set.Resolve()
	original := *resolved.Events[EventCierreDePuerta]

	AdjustMidnightCrossover(resolved)

	assert.True(t, original.Equal(*resolved.Events[EventCierreDePuerta]))
}
