package testutil

import (
	"time"

	"github.com/alexanderramin/dutyreport/internal/domain"
)

// EventStream builds ordered DutyEvents with sequence numbers assigned
// in call order, mirroring how the loader numbers rows.
type EventStream struct {
	events []domain.DutyEvent
}

func NewEventStream() *EventStream {
	return &EventStream{}
}

// Add appends an event at the given wall-clock string ("2006-01-02 15:04:05").
func (s *EventStream) Add(id, name string, status domain.DutyStatus, at string) *EventStream {
	t, err := time.ParseInLocation(domain.TimestampLayout, at, time.Local)
	if err != nil {
		panic("testutil: bad timestamp " + at + ": " + err.Error())
	}
	s.events = append(s.events, domain.DutyEvent{
		EmployeeID:   id,
		EmployeeName: name,
		Status:       status,
		At:           t,
		Seq:          len(s.events),
	})
	return s
}

// On appends a DutyOn event.
func (s *EventStream) On(id, name, at string) *EventStream {
	return s.Add(id, name, domain.StatusDutyOn, at)
}

// Off appends a DutyOff event.
func (s *EventStream) Off(id, name, at string) *EventStream {
	return s.Add(id, name, domain.StatusDutyOff, at)
}

// Events returns the accumulated stream.
func (s *EventStream) Events() []domain.DutyEvent {
	return s.events
}

// At parses a wire-format timestamp, panicking on error. Test-only sugar.
func At(value string) time.Time {
	t, err := time.ParseInLocation(domain.TimestampLayout, value, time.Local)
	if err != nil {
		panic("testutil: bad timestamp " + value + ": " + err.Error())
	}
	return t
}
