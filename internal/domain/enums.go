package domain

type DutyStatus string

const (
	StatusDutyOn  DutyStatus = "DutyOn"
	StatusDutyOff DutyStatus = "DutyOff"
)

// ValidDutyStatuses is the canonical set of accepted status strings.
var ValidDutyStatuses = map[string]bool{
	"DutyOn": true, "DutyOff": true,
}

// SessionOutcome tags how a work session was closed. Only Completed
// sessions carry a duration; every other outcome is an anomaly that is
// reported, never aggregated as zero.
type SessionOutcome string

const (
	// OutcomeCompleted is a session with a matched on/off pair.
	OutcomeCompleted SessionOutcome = "completed"
	// OutcomeUnmatchedOpen is a duty-on with no matching duty-off.
	OutcomeUnmatchedOpen SessionOutcome = "unmatched_open"
	// OutcomeUnmatchedClose is a duty-off with no preceding duty-on.
	OutcomeUnmatchedClose SessionOutcome = "unmatched_close"
	// OutcomeInvertedDuration is a pair whose end precedes its start.
	OutcomeInvertedDuration SessionOutcome = "inverted_duration"
)

// IsAnomaly reports whether the outcome represents an unpaired or
// invalid session.
func (o SessionOutcome) IsAnomaly() bool {
	return o != OutcomeCompleted
}
