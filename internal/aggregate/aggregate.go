// Package aggregate derives the summary views from reconciled sessions.
//
// All functions are pure: no I/O, no shared state. The same input always
// produces the same Report, row for row.
package aggregate

import (
	"sort"
	"time"

	"github.com/alexanderramin/dutyreport/internal/domain"
	"github.com/alexanderramin/dutyreport/internal/reconcile"
)

// Run reconciles the event stream and builds every summary view. This is
// the single entry point the presentation layer consumes.
func Run(events []domain.DutyEvent) *domain.Report {
	sessions := reconcile.Reconcile(events)
	return Build(events, sessions)
}

// Build assembles the Report from an already-reconciled session list.
func Build(events []domain.DutyEvent, sessions []domain.WorkSession) *domain.Report {
	return &domain.Report{
		Events:    events,
		Sessions:  sessions,
		ByPerson:  buildByPerson(events, sessions),
		ByDate:    buildByDate(events, sessions),
		Daily:     buildDaily(events, sessions),
		WorkHours: buildWorkHours(sessions),
		Activity:  buildActivity(events),
	}
}

func buildByPerson(events []domain.DutyEvent, sessions []domain.WorkSession) []domain.PersonSummary {
	acc := make(map[string]*domain.PersonSummary)
	days := make(map[string]map[string]bool)

	get := func(id, name string) *domain.PersonSummary {
		p, ok := acc[id]
		if !ok {
			p = &domain.PersonSummary{EmployeeID: id, EmployeeName: name}
			acc[id] = p
			days[id] = make(map[string]bool)
		}
		return p
	}

	for _, ev := range events {
		p := get(ev.EmployeeID, ev.EmployeeName)
		if ev.Status == domain.StatusDutyOn {
			p.OnCount++
		} else {
			p.OffCount++
		}
		if p.FirstActivity.IsZero() || ev.At.Before(p.FirstActivity) {
			p.FirstActivity = ev.At
		}
		if ev.At.After(p.LastActivity) {
			p.LastActivity = ev.At
		}
		days[ev.EmployeeID][ev.Date()] = true
	}

	for _, s := range sessions {
		p := get(s.EmployeeID, s.EmployeeName)
		p.TotalSessions++
		if s.Outcome == domain.OutcomeCompleted {
			p.Completed++
			p.TotalDuration += *s.Duration
		} else {
			p.Incomplete++
		}
	}

	out := make([]domain.PersonSummary, 0, len(acc))
	for id, p := range acc {
		p.ActiveDays = len(days[id])
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EmployeeName != out[j].EmployeeName {
			return out[i].EmployeeName < out[j].EmployeeName
		}
		return out[i].EmployeeID < out[j].EmployeeID
	})
	return out
}

func buildByDate(events []domain.DutyEvent, sessions []domain.WorkSession) []domain.DateSummary {
	acc := make(map[string]*domain.DateSummary)
	employees := make(map[string]map[string]bool)

	get := func(date string) *domain.DateSummary {
		d, ok := acc[date]
		if !ok {
			d = &domain.DateSummary{Date: date}
			acc[date] = d
			employees[date] = make(map[string]bool)
		}
		return d
	}

	for _, ev := range events {
		d := get(ev.Date())
		if ev.Status == domain.StatusDutyOn {
			d.OnCount++
		} else {
			d.OffCount++
		}
		if d.FirstActivity.IsZero() || ev.At.Before(d.FirstActivity) {
			d.FirstActivity = ev.At
		}
		if ev.At.After(d.LastActivity) {
			d.LastActivity = ev.At
		}
		employees[ev.Date()][ev.EmployeeID] = true
	}

	for _, s := range sessions {
		d := get(s.Date())
		d.TotalSessions++
		if s.Outcome == domain.OutcomeCompleted {
			d.Completed++
			d.TotalDuration += *s.Duration
		} else {
			d.Incomplete++
		}
	}

	out := make([]domain.DateSummary, 0, len(acc))
	for date, d := range acc {
		d.Employees = len(employees[date])
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func buildDaily(events []domain.DutyEvent, sessions []domain.WorkSession) []domain.DailySummary {
	acc := make(map[string]*domain.DailySummary)
	employees := make(map[string]map[string]bool)
	totals := make(map[string]time.Duration)
	completed := make(map[string]int)

	get := func(date string) *domain.DailySummary {
		d, ok := acc[date]
		if !ok {
			d = &domain.DailySummary{Date: date}
			acc[date] = d
			employees[date] = make(map[string]bool)
		}
		return d
	}

	for _, ev := range events {
		d := get(ev.Date())
		if ev.Status == domain.StatusDutyOn {
			d.OnCount++
		} else {
			d.OffCount++
		}
		employees[ev.Date()][ev.EmployeeID] = true
	}

	for _, s := range sessions {
		d := get(s.Date())
		d.TotalSessions++
		if s.Outcome == domain.OutcomeCompleted {
			completed[s.Date()]++
			totals[s.Date()] += *s.Duration
		}
	}

	out := make([]domain.DailySummary, 0, len(acc))
	for date, d := range acc {
		d.UniqueEmployees = len(employees[date])
		if n := completed[date]; n > 0 {
			d.AvgDuration = (totals[date] / time.Duration(n)).Truncate(time.Second)
		}
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func buildWorkHours(sessions []domain.WorkSession) []domain.WorkHoursRow {
	var out []domain.WorkHoursRow
	for _, s := range sessions {
		if s.Outcome != domain.OutcomeCompleted {
			continue
		}
		out = append(out, domain.WorkHoursRow{
			EmployeeID:   s.EmployeeID,
			EmployeeName: s.EmployeeName,
			Date:         s.Date(),
			Start:        *s.Start,
			End:          *s.End,
			Hours:        domain.RoundHours(*s.Duration),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EmployeeName != out[j].EmployeeName {
			return out[i].EmployeeName < out[j].EmployeeName
		}
		if out[i].EmployeeID != out[j].EmployeeID {
			return out[i].EmployeeID < out[j].EmployeeID
		}
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

func buildActivity(events []domain.DutyEvent) domain.ActivityProfile {
	var p domain.ActivityProfile
	for _, ev := range events {
		hour := ev.At.Hour()
		wd := ev.At.Weekday()
		if ev.Status == domain.StatusDutyOn {
			p.OnByHour[hour]++
			p.OnByWeekday[wd]++
		} else {
			p.OffByHour[hour]++
			p.OffByWeekday[wd]++
		}
	}
	return p
}
