package aggregate

import (
	"testing"
	"time"

	"github.com/alexanderramin/dutyreport/internal/domain"
	"github.com/alexanderramin/dutyreport/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvents() []domain.DutyEvent {
	return testutil.NewEventStream().
		On("9218", "shilpi", "2025-10-09 09:36:14").
		Off("9218", "shilpi", "2025-10-09 19:07:23").
		On("1001", "arun", "2025-10-09 08:00:00").
		Off("1001", "arun", "2025-10-09 16:00:00").
		On("1001", "arun", "2025-10-10 08:00:00").
		Events()
}

func TestRunWorkHoursRounding(t *testing.T) {
	rep := Run(sampleEvents())

	require.Len(t, rep.WorkHours, 2)
	// Rows sort by name; arun precedes shilpi.
	row := rep.WorkHours[1]
	assert.Equal(t, "9218", row.EmployeeID)
	assert.Equal(t, "shilpi", row.EmployeeName)
	assert.Equal(t, "2025-10-09", row.Date)
	assert.InDelta(t, 9.52, row.Hours, 1e-9, "34269s / 3600 rounds to 9.52")
}

func TestRunExcludesAnomaliesFromWorkHours(t *testing.T) {
	rep := Run(sampleEvents())

	for _, w := range rep.WorkHours {
		assert.NotEqual(t, "2025-10-10", w.Date, "the open session must not appear")
	}
	require.Len(t, rep.Anomalies(), 1)
	assert.Equal(t, domain.OutcomeUnmatchedOpen, rep.Anomalies()[0].Outcome)
}

func TestByPersonAggregates(t *testing.T) {
	rep := Run(sampleEvents())

	require.Len(t, rep.ByPerson, 2)
	arun := rep.ByPerson[0]
	shilpi := rep.ByPerson[1]

	assert.Equal(t, "arun", arun.EmployeeName)
	assert.Equal(t, 2, arun.TotalSessions)
	assert.Equal(t, 1, arun.Completed)
	assert.Equal(t, 1, arun.Incomplete, "open session counted separately, not as zero hours")
	assert.Equal(t, 8*time.Hour, arun.TotalDuration)
	assert.Equal(t, 2, arun.OnCount)
	assert.Equal(t, 1, arun.OffCount)
	assert.Equal(t, 2, arun.ActiveDays)
	assert.Equal(t, testutil.At("2025-10-09 08:00:00"), arun.FirstActivity)
	assert.Equal(t, testutil.At("2025-10-10 08:00:00"), arun.LastActivity)

	assert.Equal(t, "shilpi", shilpi.EmployeeName)
	assert.Equal(t, 1, shilpi.TotalSessions)
	assert.Equal(t, 0, shilpi.Incomplete)
	assert.Equal(t, 34269*time.Second, shilpi.TotalDuration)
}

func TestByDateAggregates(t *testing.T) {
	rep := Run(sampleEvents())

	require.Len(t, rep.ByDate, 2)
	day1 := rep.ByDate[0]
	assert.Equal(t, "2025-10-09", day1.Date)
	assert.Equal(t, 2, day1.OnCount)
	assert.Equal(t, 2, day1.OffCount)
	assert.Equal(t, 2, day1.TotalSessions)
	assert.Equal(t, 2, day1.Completed)
	assert.Equal(t, 2, day1.Employees)

	day2 := rep.ByDate[1]
	assert.Equal(t, "2025-10-10", day2.Date)
	assert.Equal(t, 1, day2.TotalSessions)
	assert.Equal(t, 1, day2.Incomplete)
	assert.Equal(t, 1, day2.Employees)
}

func TestDailySummary(t *testing.T) {
	rep := Run(sampleEvents())

	require.Len(t, rep.Daily, 2)
	day1 := rep.Daily[0]
	assert.Equal(t, 2, day1.OnCount)
	assert.Equal(t, 2, day1.OffCount)
	assert.Equal(t, 2, day1.UniqueEmployees)
	// Mean of 8h and 9h31m09s.
	want := (8*time.Hour + 34269*time.Second) / 2
	assert.Equal(t, want.Truncate(time.Second), day1.AvgDuration)

	day2 := rep.Daily[1]
	assert.Equal(t, time.Duration(0), day2.AvgDuration, "no completed sessions, no average")
}

func TestActivityProfile(t *testing.T) {
	rep := Run(sampleEvents())

	// 2025-10-09 is a Thursday, 2025-10-10 a Friday.
	assert.Equal(t, 2, rep.Activity.OnByHour[8])
	assert.Equal(t, 1, rep.Activity.OnByHour[9])
	assert.Equal(t, 1, rep.Activity.OffByHour[16])
	assert.Equal(t, 1, rep.Activity.OffByHour[19])
	assert.Equal(t, 2, rep.Activity.OnByWeekday[time.Thursday])
	assert.Equal(t, 1, rep.Activity.OnByWeekday[time.Friday])
	assert.Equal(t, 2, rep.Activity.OffByWeekday[time.Thursday])
}

func TestOrphanDutyOffAttributedToEndDate(t *testing.T) {
	events := testutil.NewEventStream().
		Off("1", "ana", "2025-10-09 17:00:00").
		Events()

	rep := Run(events)
	require.Len(t, rep.ByDate, 1)
	assert.Equal(t, "2025-10-09", rep.ByDate[0].Date)
	assert.Equal(t, 1, rep.ByDate[0].Incomplete)
}

func TestRunDeterministic(t *testing.T) {
	events := sampleEvents()
	a := Run(events)
	b := Run(events)

	assert.Equal(t, a.ByPerson, b.ByPerson)
	assert.Equal(t, a.ByDate, b.ByDate)
	assert.Equal(t, a.Daily, b.Daily)
	assert.Equal(t, a.WorkHours, b.WorkHours)
	assert.Equal(t, a.Activity, b.Activity)
}

func TestRunEmptyInput(t *testing.T) {
	rep := Run(nil)
	assert.Empty(t, rep.Sessions)
	assert.Empty(t, rep.ByPerson)
	assert.Empty(t, rep.ByDate)
	assert.Empty(t, rep.Daily)
	assert.Empty(t, rep.WorkHours)
}
