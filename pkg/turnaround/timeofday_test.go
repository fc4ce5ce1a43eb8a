package turnaround

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected TimeOfDay
	}{
		{"valid HH:MM", "14:30", TimeOfDay{Known: true, Hour: 14, Minute: 30}},
		{"seconds truncated", "14:30:45", TimeOfDay{Known: true, Hour: 14, Minute: 30}},
		{"midnight", "00:00", TimeOfDay{Known: true}},
		{"empty is missing", "", TimeOfDay{}},
		{"invalid hour", "25:00", TimeOfDay{}},
		{"garbage", "not a time", TimeOfDay{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, ParseTimeOfDay(test.value))
		})
	}
}

func TestResolve(t *testing.T) {
	referenceDate, err := ParseReferenceDate("2024-03-10")
	require.NoError(t, err)

	resolved := ParseTimeOfDay("14:30").Resolve(referenceDate)
	require.NotNil(t, resolved)
	assert.Equal(t, time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC), *resolved)

	// Resolving the same pair again gives the identical timestamp
	resolvedAgain := ParseTimeOfDay("14:30").Resolve(referenceDate)
	require.NotNil(t, resolvedAgain)
	assert.Equal(t, *resolved, *resolvedAgain)
}

func TestResolveMissing(t *testing.T) {
	referenceDate, err := ParseReferenceDate("2024-03-10")
	require.NoError(t, err)

	assert.Nil(t, TimeOfDay{}.Resolve(referenceDate))
	assert.Nil(t, ParseTimeOfDay("").Resolve(referenceDate))
	assert.Nil(t, ParseTimeOfDay("99:99").Resolve(referenceDate))
}

func TestParseReferenceDateInvalid(t *testing.T) {
	_, err := ParseReferenceDate("10/03/2024")
	assert.Error(t, err)
}

func TestEventTimeSetFromReport(t *testing.T) {
	report := TurnaroundReport{
		FlightDate: "2024-01-10",
		GroomersIn: "21:00",
		PushBack:   "22:45:30",
		ATD:        "nonsense",
	}

	set, err := report.EventTimeSet()
	require.NoError(t, err)

	assert.Equal(t, NewTimeOfDay(21, 0, 0), set.Events[EventGroomersIn])
	assert.Equal(t, NewTimeOfDay(22, 45, 0), set.Events[EventPushBack])
	assert.False(t, set.Events[EventATD].Known)
	assert.False(t, set.Events[EventSTD].Known)
}

func TestEventTimeSetRequiresFlightDate(t *testing.T) {
	report := TurnaroundReport{FlightNumber: "AV204"}

	_, err := report.EventTimeSet()
	assert.Error(t, err)
}
