package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/dutyreport/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0m"},
		{45 * time.Minute, "45m"},
		{time.Hour, "1h"},
		{7*time.Hour + 32*time.Minute, "7h 32m"},
		{30 * time.Second, "0m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.d))
	}
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "9.52h", FormatHours(9.52))
	assert.Equal(t, "0.00h", FormatHours(0))
}

func TestOptionalTime(t *testing.T) {
	at := time.Date(2025, 10, 9, 9, 36, 14, 0, time.Local)
	assert.Contains(t, OptionalTime(&at), "09:36:14")
	assert.Contains(t, OptionalTime(nil), "—")
}

func TestStatusPill(t *testing.T) {
	assert.Contains(t, StatusPill(domain.StatusDutyOn), "Duty On")
	assert.Contains(t, StatusPill(domain.StatusDutyOff), "Duty Off")
}

func TestOutcomePillCoversAllOutcomes(t *testing.T) {
	outcomes := map[domain.SessionOutcome]string{
		domain.OutcomeCompleted:        "Completed",
		domain.OutcomeUnmatchedOpen:    "Missing Off",
		domain.OutcomeUnmatchedClose:   "Missing On",
		domain.OutcomeInvertedDuration: "Inverted",
	}
	for outcome, want := range outcomes {
		assert.Contains(t, OutcomePill(outcome), want)
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"DATE", "ON"},
		[][]string{{"2025-10-09", "2"}, {"2025-10-10", "1"}},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4, "header, separator, two rows")
	assert.Contains(t, lines[0], "DATE")
	assert.Contains(t, lines[2], "2025-10-09")
}

func TestCount(t *testing.T) {
	assert.Contains(t, Count(1, "record", "records"), "1 record")
	assert.Contains(t, Count(3, "record", "records"), "3 records")
}
