package turnaround

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTimeline(t *testing.T) {
	set := testEventTimeSet(t, "2024-01-10", map[EventName]string{
		EventGroomersIn:     "20:30",
		EventCrewAtGate:     "21:15",
		EventOkToBoard:      "21:40",
		EventCierreDePuerta: "22:10",
		EventPushBack:       "22:15",
		EventATD:            "",
	})

	timeline := GenerateTimeline(set)

	require.Len(t, timeline, 5)

	assert.Equal(t, EventName(EventGroomersIn), timeline[0].Event)
	assert.Equal(t, "Groomers In", timeline[0].Label)
	assert.Equal(t, time.Duration(0), timeline[0].SincePrevious)

	assert.Equal(t, EventName(EventCrewAtGate), timeline[1].Event)
	assert.Equal(t, 45*time.Minute, timeline[1].SincePrevious)

	assert.Equal(t, EventName(EventPushBack), timeline[4].Event)
	assert.Equal(t, 5*time.Minute, timeline[4].SincePrevious)
}

func TestGenerateTimelineAcrossMidnight(t *testing.T) {
	set := testEventTimeSet(t, "2024-01-10", map[EventName]string{
		EventGroomersIn:     "23:10",
		EventCrewAtGate:     "23:40",
		EventCierreDePuerta: "00:35",
		EventATD:            "00:45",
	})

	timeline := GenerateTimeline(set)

	require.Len(t, timeline, 4)

	// Crossover correction puts the post-midnight events last, not first
	assert.Equal(t, EventName(EventGroomersIn), timeline[0].Event)
	assert.Equal(t, EventName(EventATD), timeline[3].Event)
	assert.Equal(t, 55*time.Minute, timeline[2].SincePrevious)
}

func TestGenerateTimelineSameMinuteKeepsSequenceOrder(t *testing.T) {
	set := testEventTimeSet(t, "2024-01-10", map[EventName]string{
		EventPushBack: "22:00",
		EventSTD:      "22:00",
		EventATD:      "22:00",
	})

	timeline := GenerateTimeline(set)

	require.Len(t, timeline, 3)
	assert.Equal(t, EventName(EventPushBack), timeline[0].Event)
	assert.Equal(t, EventName(EventSTD), timeline[1].Event)
	assert.Equal(t, EventName(EventATD), timeline[2].Event)
}

func TestGenerateTimelineEmpty(t *testing.T) {
	set := testEventTimeSet(t, "2024-01-10", map[EventName]string{})

	assert.Empty(t, GenerateTimeline(set))
}

func TestGenerateAverageTimeline(t *testing.T) {
	sets := []EventTimeSet{
		testEventTimeSet(t, "2024-01-10", map[EventName]string{
			EventGroomersIn: "20:00",
			EventPushBack:   "22:00",
		}),
		testEventTimeSet(t, "2024-01-11", map[EventName]string{
			EventGroomersIn: "20:10",
			EventPushBack:   "22:10",
		}),
	}

	timeline := GenerateAverageTimeline(sets)

	require.Len(t, timeline, 2)
	assert.Equal(t, EventName(EventGroomersIn), timeline[0].Event)
	assert.Equal(t, 20, timeline[0].Time.Hour())
	assert.Equal(t, 5, timeline[0].Time.Minute())
	assert.Equal(t, EventName(EventPushBack), timeline[1].Event)
	assert.Equal(t, 2*time.Hour, timeline[1].SincePrevious)
}
