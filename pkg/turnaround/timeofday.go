package turnaround

import (
	"time"

	"github.com/rs/zerolog/log"
)

// TimeOfDay is a wall-clock time with no date attached. The zero value is
// "missing" - not all events get recorded on every turnaround, and a missing
// time must stay distinguishable from midnight
type TimeOfDay struct {
	Known bool

	Hour   int
	Minute int
	Second int
}

func NewTimeOfDay(hour int, minute int, second int) TimeOfDay {
	return TimeOfDay{
		Known:  true,
		Hour:   hour,
		Minute: minute,
		Second: second,
	}
}

// ParseTimeOfDay converts a stored "HH:MM" or "HH:MM:SS" string into a
// TimeOfDay. Seconds are dropped as the dashboard only captures minutes.
// An empty string is a missing value, an unparseable one is logged and
// treated as missing - callers never see an error
func ParseTimeOfDay(value string) TimeOfDay {
	if value == "" {
		return TimeOfDay{}
	}

	// Truncate HH:MM:SS down to HH:MM
	if len(value) > 5 {
		value = value[:5]
	}

	parsed, err := time.Parse("15:04", value)
	if err != nil {
		log.Warn().Str("value", value).Err(err).Msg("Failed to parse time of day")
		return TimeOfDay{}
	}

	return TimeOfDay{
		Known:  true,
		Hour:   parsed.Hour(),
		Minute: parsed.Minute(),
	}
}

// Resolve binds the time of day to a reference date, producing an absolute
// local timestamp. Returns nil when the time of day is missing
func (tod TimeOfDay) Resolve(referenceDate time.Time) *time.Time {
	if !tod.Known {
		return nil
	}

	resolved := time.Date(
		referenceDate.Year(), referenceDate.Month(), referenceDate.Day(),
		tod.Hour, tod.Minute, tod.Second, 0, referenceDate.Location(),
	)

	return &resolved
}

const ReferenceDateFormat = "2006-01-02"

// ParseReferenceDate parses the ISO calendar date a turnaround is logically
// associated with
func ParseReferenceDate(value string) (time.Time, error) {
	return time.Parse(ReferenceDateFormat, value)
}
