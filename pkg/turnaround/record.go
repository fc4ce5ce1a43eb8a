package turnaround

import (
	"errors"
	"fmt"
	"time"
)

// TurnaroundReport is one ground-crew submission for a single departure -
// the nine operational event times plus the passenger, wheelchair, delay and
// gate details captured on the entry form. Event times are persisted exactly
// as entered ("HH:MM" strings, empty when not recorded); everything derived
// from them is recalculated per request
type TurnaroundReport struct {
	PrimaryIdentifier string `groups:"basic"`

	CreationDateTime     time.Time `groups:"basic"`
	ModificationDateTime time.Time `groups:"detailed"`

	FlightDate   string `groups:"basic"`
	FlightNumber string `groups:"basic"`
	Origin       string `groups:"basic"`
	Destination  string `groups:"basic"`

	Gate      string `groups:"basic"`
	Carrousel string `groups:"detailed"`
	GateBag   string `groups:"detailed"`

	GroomersIn     string `groups:"basic"`
	GroomersOut    string `groups:"basic"`
	CrewAtGate     string `groups:"basic"`
	OkToBoard      string `groups:"basic"`
	FlightSecure   string `groups:"basic"`
	CierreDePuerta string `groups:"basic"`
	PushBack       string `groups:"basic"`
	STD            string `groups:"basic"`
	ATD            string `groups:"basic"`

	CustomsIn  string `groups:"detailed"`
	CustomsOut string `groups:"detailed"`

	PaxTotal int `groups:"detailed"`
	PaxC     int `groups:"detailed"`
	PaxY     int `groups:"detailed"`
	Infants  int `groups:"detailed"`

	WheelchairsArrival   int `groups:"detailed"`
	AgentsArrival        int `groups:"detailed"`
	WheelchairsDeparture int `groups:"detailed"`
	AgentsDeparture      int `groups:"detailed"`

	DelayMinutes int    `groups:"detailed"`
	DelayCode    string `groups:"detailed"`

	Comments string `groups:"detailed"`
}

func (report *TurnaroundReport) GenerateIdentifier() {
	report.PrimaryIdentifier = fmt.Sprintf(
		"turnlog-report-%s-%s-%d", report.FlightNumber, report.FlightDate, report.CreationDateTime.Unix(),
	)
}

// RecordedTimes returns the event time strings exactly as entered on the form
func (report *TurnaroundReport) RecordedTimes() map[EventName]string {
	return map[EventName]string{
		EventGroomersIn:     report.GroomersIn,
		EventGroomersOut:    report.GroomersOut,
		EventCrewAtGate:     report.CrewAtGate,
		EventOkToBoard:      report.OkToBoard,
		EventFlightSecure:   report.FlightSecure,
		EventCierreDePuerta: report.CierreDePuerta,
		EventPushBack:       report.PushBack,
		EventSTD:            report.STD,
		EventATD:            report.ATD,
	}
}

// EventTimeSet parses the report's recorded time strings against its flight
// date. Individual malformed times degrade to missing; a missing or
// malformed flight date makes the whole set unusable and is the caller's
// signal to skip this report
func (report *TurnaroundReport) EventTimeSet() (EventTimeSet, error) {
	if report.FlightDate == "" {
		return EventTimeSet{}, errors.New("turnaround report has no flight date")
	}

	referenceDate, err := ParseReferenceDate(report.FlightDate)
	if err != nil {
		return EventTimeSet{}, err
	}

	events := map[EventName]TimeOfDay{}
	for event, value := range report.RecordedTimes() {
		events[event] = ParseTimeOfDay(value)
	}

	return EventTimeSet{
		ReferenceDate: referenceDate,
		Events:        events,
	}, nil
}
