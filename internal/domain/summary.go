package domain

import (
	"math"
	"time"
)

// PersonSummary aggregates one employee's sessions and events.
type PersonSummary struct {
	EmployeeID    string
	EmployeeName  string
	TotalSessions int
	Completed     int
	Incomplete    int
	TotalDuration time.Duration // completed sessions only
	OnCount       int
	OffCount      int
	ActiveDays    int
	FirstActivity time.Time
	LastActivity  time.Time
}

// DateSummary aggregates all sessions attributed to one calendar date.
type DateSummary struct {
	Date          string
	TotalSessions int
	Completed     int
	Incomplete    int
	TotalDuration time.Duration
	OnCount       int
	OffCount      int
	Employees     int
	FirstActivity time.Time
	LastActivity  time.Time
}

// DailySummary is the per-date event roll-up across all employees.
type DailySummary struct {
	Date            string
	OnCount         int
	OffCount        int
	TotalSessions   int
	UniqueEmployees int
	AvgDuration     time.Duration // mean over completed sessions, 0 if none
}

// WorkHoursRow is one completed session in report form. Hours is the
// duration in hours rounded half-to-even to two decimal places.
type WorkHoursRow struct {
	EmployeeID   string
	EmployeeName string
	Date         string
	Start        time.Time
	End          time.Time
	Hours        float64
}

// ActivityProfile counts events by hour of day and by weekday, split by
// status. Indexed 0-23 and time.Weekday respectively.
type ActivityProfile struct {
	OnByHour     [24]int
	OffByHour    [24]int
	OnByWeekday  [7]int
	OffByWeekday [7]int
}

// Report is the immutable result of one reconcile-and-aggregate pass,
// handed whole from the core to the presentation layer.
type Report struct {
	Events    []DutyEvent
	Sessions  []WorkSession
	ByPerson  []PersonSummary
	ByDate    []DateSummary
	Daily     []DailySummary
	WorkHours []WorkHoursRow
	Activity  ActivityProfile
}

// Anomalies returns the sessions whose outcome is not Completed, in
// report order.
func (r *Report) Anomalies() []WorkSession {
	var out []WorkSession
	for _, s := range r.Sessions {
		if s.Outcome.IsAnomaly() {
			out = append(out, s)
		}
	}
	return out
}

// RoundHours converts a duration to hours rounded half-to-even at two
// decimal places. Duration arithmetic stays in whole seconds internally;
// hour conversion happens only at this reporting boundary.
func RoundHours(d time.Duration) float64 {
	hours := float64(d/time.Second) / 3600
	return math.RoundToEven(hours*100) / 100
}
