package report

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/turnlog/turnlog/pkg/util"
	"gopkg.in/yaml.v3"
)

// FlightPairings maps an outbound flight number to the inbound flight that
// feeds it, used to label the arrival wheelchair figures on a report
type FlightPairings struct {
	Inbound map[string]string `yaml:"inbound"`
}

var defaultPairings = FlightPairings{
	Inbound: map[string]string{
		"AV205": "AV204",
		"AV627": "AV626",
		"AV255": "AV254",
	},
}

// LoadFlightPairings reads the pairing table from the YAML file named by
// TURNLOG_FLIGHT_PAIRINGS, falling back to the built-in table when unset or
// unreadable
func LoadFlightPairings() FlightPairings {
	env := util.GetEnvironmentVariables()

	path := env["TURNLOG_FLIGHT_PAIRINGS"]
	if path == "" {
		return defaultPairings
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Failed to read flight pairings file")
		return defaultPairings
	}

	var pairings FlightPairings
	if err := yaml.Unmarshal(contents, &pairings); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Failed to parse flight pairings file")
		return defaultPairings
	}

	return pairings
}

func (pairings FlightPairings) InboundFor(flightNumber string) string {
	return pairings.Inbound[flightNumber]
}
