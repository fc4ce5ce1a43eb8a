package turnaround

type EventName string

const (
	EventGroomersIn    EventName = "groomers_in"
	EventGroomersOut             = "groomers_out"
	EventCrewAtGate              = "crew_at_gate"
	EventOkToBoard               = "ok_to_board"
	EventFlightSecure            = "flight_secure"
	EventCierreDePuerta          = "cierre_de_puerta"
	EventPushBack                = "push_back"
	EventSTD                     = "std"
	EventATD                     = "atd"
)

// EventSequence is the canonical ordering of turnaround events, used for
// iteration and for tie-breaking events recorded at the same minute
var EventSequence = []EventName{
	EventGroomersIn,
	EventGroomersOut,
	EventCrewAtGate,
	EventOkToBoard,
	EventFlightSecure,
	EventCierreDePuerta,
	EventPushBack,
	EventSTD,
	EventATD,
}

var EventLabels = map[EventName]string{
	EventGroomersIn:     "Groomers In",
	EventGroomersOut:    "Groomers Out",
	EventCrewAtGate:     "Crew at Gate",
	EventOkToBoard:      "OK to Board",
	EventFlightSecure:   "Flight Secure",
	EventCierreDePuerta: "Cierre de Puerta",
	EventPushBack:       "Push Back",
	EventSTD:            "STD (Salida Programada)",
	EventATD:            "ATD (Salida Real)",
}

// Early phase events are expected before midnight on an overnight turnaround,
// late phase events after. Everything else falls back to the generic gap rule
var earlyPhaseEvents = []EventName{
	EventGroomersIn,
	EventCrewAtGate,
}

var latePhaseEvents = []EventName{
	EventFlightSecure,
	EventCierreDePuerta,
	EventPushBack,
	EventATD,
}
