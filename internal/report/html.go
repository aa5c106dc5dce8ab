package report

import (
	"fmt"
	"html/template"
	"os"
	"sort"
	"time"

	"github.com/alexanderramin/dutyreport/internal/domain"
)

// Meta carries run information shown in the page footer.
type Meta struct {
	SourceFiles []string
	SkippedRows int
	GeneratedAt time.Time
}

type htmlPage struct {
	Meta Meta

	TotalRecords  int
	Employees     int
	OnCount       int
	OffCount      int
	Sessions      int
	Completed     int
	Anomalies     int
	DateFirst     string
	DateLast      string
	TotalHours    float64

	Daily        []dailyBar
	TopEmployees []employeeBar
	Hourly       []hourRow
	Weekdays     []weekdayRow
	WorkHours    []domain.WorkHoursRow
	AnomalyRows  []anomalyRow
}

type dailyBar struct {
	Date     string
	On, Off  int
	OnPct    int
	OffPct   int
	Sessions int
}

type employeeBar struct {
	Name    string
	Records int
	Pct     int
}

type hourRow struct {
	Hour    int
	On, Off int
	OnPct   int
	OffPct  int
}

type weekdayRow struct {
	Day     string
	On, Off int
	OnPct   int
	OffPct  int
}

type anomalyRow struct {
	EmployeeID   string
	EmployeeName string
	Date         string
	Kind         string
	Start        string
	End          string
}

// WriteHTML renders the static dashboard page.
func WriteHTML(path string, r *domain.Report, meta Meta) error {
	page := buildPage(r, meta)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := pageTemplate.Execute(f, page); err != nil {
		f.Close()
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func buildPage(r *domain.Report, meta Meta) htmlPage {
	p := htmlPage{Meta: meta, TotalRecords: len(r.Events), Sessions: len(r.Sessions)}

	for _, ps := range r.ByPerson {
		p.Employees++
		p.OnCount += ps.OnCount
		p.OffCount += ps.OffCount
		p.Completed += ps.Completed
		p.Anomalies += ps.Incomplete
		p.TotalHours += domain.RoundHours(ps.TotalDuration)
	}
	if len(r.Daily) > 0 {
		p.DateFirst = r.Daily[0].Date
		p.DateLast = r.Daily[len(r.Daily)-1].Date
	}

	maxDaily := 1
	for _, d := range r.Daily {
		if d.OnCount > maxDaily {
			maxDaily = d.OnCount
		}
		if d.OffCount > maxDaily {
			maxDaily = d.OffCount
		}
	}
	for _, d := range r.Daily {
		p.Daily = append(p.Daily, dailyBar{
			Date:     d.Date,
			On:       d.OnCount,
			Off:      d.OffCount,
			OnPct:    pct(d.OnCount, maxDaily),
			OffPct:   pct(d.OffCount, maxDaily),
			Sessions: d.TotalSessions,
		})
	}

	top := make([]domain.PersonSummary, len(r.ByPerson))
	copy(top, r.ByPerson)
	sort.Slice(top, func(i, j int) bool {
		ri := top[i].OnCount + top[i].OffCount
		rj := top[j].OnCount + top[j].OffCount
		if ri != rj {
			return ri > rj
		}
		return top[i].EmployeeName < top[j].EmployeeName
	})
	if len(top) > 15 {
		top = top[:15]
	}
	maxRec := 1
	if len(top) > 0 {
		maxRec = top[0].OnCount + top[0].OffCount
	}
	for _, ps := range top {
		rec := ps.OnCount + ps.OffCount
		p.TopEmployees = append(p.TopEmployees, employeeBar{
			Name:    ps.EmployeeName,
			Records: rec,
			Pct:     pct(rec, maxRec),
		})
	}

	maxHour := 1
	for h := 0; h < 24; h++ {
		if r.Activity.OnByHour[h] > maxHour {
			maxHour = r.Activity.OnByHour[h]
		}
		if r.Activity.OffByHour[h] > maxHour {
			maxHour = r.Activity.OffByHour[h]
		}
	}
	for h := 0; h < 24; h++ {
		on, off := r.Activity.OnByHour[h], r.Activity.OffByHour[h]
		if on == 0 && off == 0 {
			continue
		}
		p.Hourly = append(p.Hourly, hourRow{
			Hour: h, On: on, Off: off,
			OnPct: pct(on, maxHour), OffPct: pct(off, maxHour),
		})
	}

	maxDay := 1
	for d := 0; d < 7; d++ {
		if r.Activity.OnByWeekday[d] > maxDay {
			maxDay = r.Activity.OnByWeekday[d]
		}
		if r.Activity.OffByWeekday[d] > maxDay {
			maxDay = r.Activity.OffByWeekday[d]
		}
	}
	// Monday-first ordering, as in the source charts.
	for i := 0; i < 7; i++ {
		wd := time.Weekday((i + 1) % 7)
		on, off := r.Activity.OnByWeekday[wd], r.Activity.OffByWeekday[wd]
		p.Weekdays = append(p.Weekdays, weekdayRow{
			Day: wd.String(), On: on, Off: off,
			OnPct: pct(on, maxDay), OffPct: pct(off, maxDay),
		})
	}

	p.WorkHours = r.WorkHours

	for _, s := range r.Anomalies() {
		row := anomalyRow{
			EmployeeID:   s.EmployeeID,
			EmployeeName: s.EmployeeName,
			Date:         s.Date(),
			Kind:         string(s.Outcome),
		}
		if s.Start != nil {
			row.Start = s.Start.Format(domain.TimestampLayout)
		}
		if s.End != nil {
			row.End = s.End.Format(domain.TimestampLayout)
		}
		p.AnomalyRows = append(p.AnomalyRows, row)
	}

	return p
}

func pct(n, max int) int {
	if max <= 0 {
		return 0
	}
	return n * 100 / max
}

var pageTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Duty Schedule Dashboard</title>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 2rem; background: #fbf1c7; color: #3c3836; }
  h1 { border-bottom: 3px solid #fe8019; padding-bottom: .3rem; }
  h2 { color: #af3a03; margin-top: 2rem; }
  .cards { display: flex; flex-wrap: wrap; gap: 1rem; }
  .card { background: #f9f5d7; border: 1px solid #d5c4a1; border-radius: 8px; padding: 1rem 1.5rem; min-width: 9rem; }
  .card .num { font-size: 1.6rem; font-weight: 700; }
  .card .label { color: #7c6f64; font-size: .85rem; }
  table { border-collapse: collapse; margin-top: .5rem; }
  th, td { text-align: left; padding: .25rem .8rem; border-bottom: 1px solid #ebdbb2; font-size: .9rem; }
  th { color: #af3a03; }
  td.num { text-align: right; font-variant-numeric: tabular-nums; }
  .bar { display: inline-block; height: .7rem; border-radius: 3px; vertical-align: middle; }
  .bar.on { background: #79740e; }
  .bar.off { background: #9d0006; }
  .anomaly { color: #9d0006; }
  footer { margin-top: 3rem; color: #7c6f64; font-size: .8rem; }
</style>
</head>
<body>
<h1>Duty Schedule Dashboard</h1>

<div class="cards">
  <div class="card"><div class="num">{{.TotalRecords}}</div><div class="label">Records</div></div>
  <div class="card"><div class="num">{{.Employees}}</div><div class="label">Employees</div></div>
  <div class="card"><div class="num">{{.OnCount}}</div><div class="label">Duty On</div></div>
  <div class="card"><div class="num">{{.OffCount}}</div><div class="label">Duty Off</div></div>
  <div class="card"><div class="num">{{.Completed}}</div><div class="label">Completed Sessions</div></div>
  <div class="card"><div class="num {{if .Anomalies}}anomaly{{end}}">{{.Anomalies}}</div><div class="label">Anomalies</div></div>
  <div class="card"><div class="num">{{printf "%.2f" .TotalHours}}</div><div class="label">Total Hours</div></div>
</div>
{{if .DateFirst}}<p>Covering {{.DateFirst}} to {{.DateLast}}.</p>{{end}}

<h2>Daily Activity</h2>
<table>
<tr><th>Date</th><th>Duty On</th><th></th><th>Duty Off</th><th></th><th>Sessions</th></tr>
{{range .Daily}}<tr>
  <td>{{.Date}}</td>
  <td class="num">{{.On}}</td><td><span class="bar on" style="width:{{.OnPct}}px"></span></td>
  <td class="num">{{.Off}}</td><td><span class="bar off" style="width:{{.OffPct}}px"></span></td>
  <td class="num">{{.Sessions}}</td>
</tr>{{end}}
</table>

<h2>Top Employees</h2>
<table>
<tr><th>Name</th><th>Records</th><th></th></tr>
{{range .TopEmployees}}<tr>
  <td>{{.Name}}</td><td class="num">{{.Records}}</td>
  <td><span class="bar on" style="width:{{.Pct}}px"></span></td>
</tr>{{end}}
</table>

<h2>Hourly Pattern</h2>
<table>
<tr><th>Hour</th><th>On</th><th></th><th>Off</th><th></th></tr>
{{range .Hourly}}<tr>
  <td>{{printf "%02d:00" .Hour}}</td>
  <td class="num">{{.On}}</td><td><span class="bar on" style="width:{{.OnPct}}px"></span></td>
  <td class="num">{{.Off}}</td><td><span class="bar off" style="width:{{.OffPct}}px"></span></td>
</tr>{{end}}
</table>

<h2>Day of Week</h2>
<table>
<tr><th>Day</th><th>On</th><th></th><th>Off</th><th></th></tr>
{{range .Weekdays}}<tr>
  <td>{{.Day}}</td>
  <td class="num">{{.On}}</td><td><span class="bar on" style="width:{{.OnPct}}px"></span></td>
  <td class="num">{{.Off}}</td><td><span class="bar off" style="width:{{.OffPct}}px"></span></td>
</tr>{{end}}
</table>

<h2>Work Hours</h2>
<table>
<tr><th>ID</th><th>Name</th><th>Date</th><th>On</th><th>Off</th><th>Hours</th></tr>
{{range .WorkHours}}<tr>
  <td>{{.EmployeeID}}</td><td>{{.EmployeeName}}</td><td>{{.Date}}</td>
  <td>{{.Start.Format "15:04:05"}}</td><td>{{.End.Format "15:04:05"}}</td>
  <td class="num">{{printf "%.2f" .Hours}}</td>
</tr>{{end}}
</table>

{{if .AnomalyRows}}
<h2 class="anomaly">Anomalies</h2>
<table>
<tr><th>ID</th><th>Name</th><th>Date</th><th>Kind</th><th>Start</th><th>End</th></tr>
{{range .AnomalyRows}}<tr>
  <td>{{.EmployeeID}}</td><td>{{.EmployeeName}}</td><td>{{.Date}}</td>
  <td class="anomaly">{{.Kind}}</td><td>{{.Start}}</td><td>{{.End}}</td>
</tr>{{end}}
</table>
{{end}}

<footer>
Generated {{.Meta.GeneratedAt.Format "2006-01-02 15:04:05"}} from {{len .Meta.SourceFiles}} file(s){{if .Meta.SkippedRows}}, {{.Meta.SkippedRows}} row(s) skipped{{end}}.
</footer>
</body>
</html>
`))
