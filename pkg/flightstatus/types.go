package flightstatus

// FlightLeg is one leg of a flight as returned by the AeroDataBox flight
// number endpoint. A flight number can map to several legs on the same day
type FlightLeg struct {
	Number          string         `json:"number" groups:"basic"`
	CallSign        string         `json:"callSign" groups:"detailed"`
	Status          string         `json:"status" groups:"basic"`
	CodeshareStatus string         `json:"codeshareStatus" groups:"detailed"`
	IsCargo         bool           `json:"isCargo" groups:"detailed"`
	Departure       FlightMovement `json:"departure" groups:"basic"`
	Arrival         FlightMovement `json:"arrival" groups:"basic"`
	Airline         Airline        `json:"airline" groups:"basic"`
	Aircraft        Aircraft       `json:"aircraft" groups:"detailed"`
	LastUpdatedUtc  string         `json:"lastUpdatedUtc" groups:"detailed"`
}

type FlightMovement struct {
	Airport       Airport    `json:"airport" groups:"basic"`
	ScheduledTime FlightTime `json:"scheduledTime" groups:"basic"`
	RevisedTime   FlightTime `json:"revisedTime" groups:"basic"`
	PredictedTime FlightTime `json:"predictedTime" groups:"detailed"`
	Terminal      string     `json:"terminal" groups:"basic"`
	Gate          string     `json:"gate" groups:"basic"`
	Quality       []string   `json:"quality" groups:"detailed"`
}

type Airport struct {
	Name             string `json:"name" groups:"basic"`
	IATA             string `json:"iata" groups:"basic"`
	ICAO             string `json:"icao" groups:"detailed"`
	MunicipalityName string `json:"municipalityName" groups:"detailed"`
	TimeZone         string `json:"timeZone" groups:"detailed"`
}

// FlightTime carries the same instant in UTC and in the airport's local
// zone, formatted by the API as "YYYY-MM-DD HH:MM±HH:MM"
type FlightTime struct {
	UTC   string `json:"utc" groups:"detailed"`
	Local string `json:"local" groups:"basic"`
}

type Airline struct {
	Name string `json:"name" groups:"basic"`
	IATA string `json:"iata" groups:"detailed"`
	ICAO string `json:"icao" groups:"detailed"`
}

type Aircraft struct {
	Model string `json:"model" groups:"detailed"`
	Reg   string `json:"reg" groups:"detailed"`
}
