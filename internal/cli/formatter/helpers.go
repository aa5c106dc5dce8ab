package formatter

import (
	"fmt"
	"time"

	"github.com/alexanderramin/dutyreport/internal/domain"
)

// StatusPill returns a colored indicator for a duty status.
func StatusPill(status domain.DutyStatus) string {
	switch status {
	case domain.StatusDutyOn:
		return StyleGreen.Render("● Duty On")
	case domain.StatusDutyOff:
		return StyleRed.Render("○ Duty Off")
	default:
		return StyleDim.Render(string(status))
	}
}

// OutcomePill returns a colored indicator for a session outcome.
func OutcomePill(outcome domain.SessionOutcome) string {
	switch outcome {
	case domain.OutcomeCompleted:
		return StyleGreen.Render("✔ Completed")
	case domain.OutcomeUnmatchedOpen:
		return StyleYellow.Render("◐ Missing Off")
	case domain.OutcomeUnmatchedClose:
		return StyleYellow.Render("◑ Missing On")
	case domain.OutcomeInvertedDuration:
		return StyleRed.Render("⊘ Inverted")
	default:
		return StyleDim.Render(string(outcome))
	}
}

// FormatDuration converts a duration into human-friendly "7h 32m" form.
func FormatDuration(d time.Duration) string {
	total := int(d / time.Minute)
	if total <= 0 {
		return "0m"
	}
	h := total / 60
	m := total % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatHours renders a fractional hour count, e.g. "9.52h".
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.2fh", hours)
}

// Timestamp renders a timestamp in the report wire format.
func Timestamp(t time.Time) string {
	return t.Format(domain.TimestampLayout)
}

// OptionalTime renders a possibly-absent timestamp, dimmed dash when nil.
func OptionalTime(t *time.Time) string {
	if t == nil {
		return StyleDim.Render("—")
	}
	return t.Format("15:04:05")
}

// Count renders n with a dim singular/plural noun.
func Count(n int, singular, plural string) string {
	noun := plural
	if n == 1 {
		noun = singular
	}
	return fmt.Sprintf("%d %s", n, Dim(noun))
}
