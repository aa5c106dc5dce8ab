package domain

import "time"

// WorkSession is the reconstructed interval between a duty-on and its
// matching duty-off. Start is nil for an orphan duty-off; End is nil for
// an unmatched duty-on. Duration is set iff Outcome is Completed, and is
// always >= 0.
type WorkSession struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Start        *time.Time
	End          *time.Time
	Outcome      SessionOutcome
	Duration     *time.Duration
}

// Date returns the calendar date the session is attributed to: the start
// date, or the end date when the start is absent. Empty when the session
// has neither endpoint (never produced by reconciliation).
func (s WorkSession) Date() string {
	switch {
	case s.Start != nil:
		return s.Start.Format(DateLayout)
	case s.End != nil:
		return s.End.Format(DateLayout)
	default:
		return ""
	}
}

// Anchor returns the timestamp the session sorts by: start when present,
// otherwise end.
func (s WorkSession) Anchor() time.Time {
	if s.Start != nil {
		return *s.Start
	}
	if s.End != nil {
		return *s.End
	}
	return time.Time{}
}

// Hours converts the session duration to hours rounded half-to-even at
// two decimal places. Returns false for sessions without a duration.
func (s WorkSession) Hours() (float64, bool) {
	if s.Duration == nil {
		return 0, false
	}
	return RoundHours(*s.Duration), true
}
