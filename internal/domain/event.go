package domain

import "time"

// TimestampLayout is the wire format for event timestamps, parsed as
// local naive time.
const TimestampLayout = "2006-01-02 15:04:05"

// DateLayout is the calendar-date format used in reports.
const DateLayout = "2006-01-02"

// DutyEvent is one parsed row of the duty log. Immutable once parsed.
// Seq preserves input order across merged files and breaks timestamp ties
// during reconciliation.
type DutyEvent struct {
	EmployeeID   string
	EmployeeName string
	Status       DutyStatus
	At           time.Time
	Seq          int
}

// Date returns the calendar date of the event as YYYY-MM-DD.
func (e DutyEvent) Date() string {
	return e.At.Format(DateLayout)
}
