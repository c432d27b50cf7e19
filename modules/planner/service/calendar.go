package service

import (
	"fmt"
	"time"
)

// CalendarMapper converts UTC instants into the availability grid's local
// (day-of-week, hour) coordinates through the tz database, so daylight-saving
// transitions land on the wall-clock hour the user actually experiences.
type CalendarMapper struct {
	loc *time.Location
}

// NewCalendarMapper loads the given IANA timezone identifier. An empty or
// unknown identifier is an error; time.LoadLocation would silently hand back
// UTC for "".
func NewCalendarMapper(timezoneID string) (*CalendarMapper, error) {
	if timezoneID == "" {
		return nil, fmt.Errorf("timezone identifier is required")
	}
	loc, err := time.LoadLocation(timezoneID)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", timezoneID, err)
	}
	return &CalendarMapper{loc: loc}, nil
}

// LocalSlot returns the local day of week (0 = Sunday) and hour (0-23) for t.
func (m *CalendarMapper) LocalSlot(t time.Time) (dayOfWeek, hour int) {
	local := t.In(m.loc)
	return int(local.Weekday()), local.Hour()
}

// Location exposes the resolved zone for callers that format timestamps.
func (m *CalendarMapper) Location() *time.Location {
	return m.loc
}
