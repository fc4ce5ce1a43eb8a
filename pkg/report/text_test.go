package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turnlog/turnlog/pkg/turnaround"
)

func TestGenerateText(t *testing.T) {
	testReport := turnaround.TurnaroundReport{
		FlightDate:   "2024-01-10",
		FlightNumber: "AV205",
		Origin:       "YYZ",
		Destination:  "BOG",
		Gate:         "E75",
		STD:          "23:55",
		ATD:          "00:05",
		PushBack:     "23:58",

		PaxTotal: 180,
		PaxC:     12,
		PaxY:     168,

		WheelchairsArrival:   4,
		AgentsArrival:        2,
		WheelchairsDeparture: 3,
		AgentsDeparture:      2,

		DelayMinutes: 10,
		DelayCode:    "93",

		Comments: "Demora por conexión de pasajeros",
	}

	text := GenerateText(testReport, defaultPairings)

	assert.Contains(t, text, "*Número de vuelo:* AV205")
	assert.Contains(t, text, "*STD:* 23:55")
	assert.Contains(t, text, "*Push Back:* 23:58")
	assert.Contains(t, text, "*Sillas Vuelo Llegada (AV204):* 4")
	assert.Contains(t, text, "*Sillas Vuelo Salida (AV205):* 3")
	assert.Contains(t, text, "*Delay Code:* 93")
	assert.Contains(t, text, "Demora por conexión de pasajeros")
}

func TestLoadFlightPairingsDefaults(t *testing.T) {
	t.Setenv("TURNLOG_FLIGHT_PAIRINGS", "")

	pairings := LoadFlightPairings()

	assert.Equal(t, "AV204", pairings.InboundFor("AV205"))
	assert.Equal(t, "", pairings.InboundFor("AV999"))
}

func TestLoadFlightPairingsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairings.yaml")
	err := os.WriteFile(path, []byte("inbound:\n  AV101: AV100\n"), 0644)
	require.NoError(t, err)

	t.Setenv("TURNLOG_FLIGHT_PAIRINGS", path)

	pairings := LoadFlightPairings()

	assert.Equal(t, "AV100", pairings.InboundFor("AV101"))
	assert.Equal(t, "", pairings.InboundFor("AV205"))
}

func TestLoadFlightPairingsBadFileFallsBack(t *testing.T) {
	t.Setenv("TURNLOG_FLIGHT_PAIRINGS", "/nonexistent/pairings.yaml")

	pairings := LoadFlightPairings()

	assert.Equal(t, "AV204", pairings.InboundFor("AV205"))
}
