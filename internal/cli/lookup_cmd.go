package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/dutyreport/internal/cli/formatter"
	"github.com/alexanderramin/dutyreport/internal/domain"
	"github.com/alexanderramin/dutyreport/internal/report"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newLookupCmd(app *App) *cobra.Command {
	var csvOut string

	cmd := &cobra.Command{
		Use:   "lookup [name]",
		Short: "Look up one employee's duty schedule",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, res, err := app.loadReport("")
			if err != nil {
				return err
			}
			printSkipped(res)

			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			if name == "" {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("employee name required (non-interactive terminal)")
				}
				name, err = pickEmployee(rep)
				if err != nil {
					return err
				}
			}

			return runLookupFor(app, rep, name, csvOut)
		},
	}

	cmd.Flags().StringVar(&csvOut, "csv", "", "Also write the schedule to this CSV file")

	return cmd
}

// runLookup is the launcher-menu entry: always interactive.
func runLookup(app *App) error {
	rep, res, err := app.loadReport("")
	if err != nil {
		return err
	}
	printSkipped(res)
	name, err := pickEmployee(rep)
	if err != nil {
		return err
	}
	return runLookupFor(app, rep, name, "")
}

func pickEmployee(rep *domain.Report) (string, error) {
	options := make([]huh.Option[string], 0, len(rep.ByPerson))
	for _, p := range rep.ByPerson {
		label := fmt.Sprintf("%s (%d records)", p.EmployeeName, p.OnCount+p.OffCount)
		options = append(options, huh.NewOption(label, p.EmployeeName))
	}

	var name string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select employee").
				Options(options...).
				Value(&name),
		),
	).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return "", err
	}
	return name, nil
}

func runLookupFor(app *App, rep *domain.Report, name string, csvOut string) error {
	summary, ok := findPerson(rep, name)
	if !ok {
		return fmt.Errorf("no duty records found for employee %q", name)
	}

	fmt.Println()
	fmt.Println(formatter.RenderBox(summary.EmployeeName, fmt.Sprintf(
		"%s   %s   %s   %s",
		formatter.Count(summary.ActiveDays, "day", "days"),
		formatter.StyleGreen.Render(fmt.Sprintf("%d on", summary.OnCount)),
		formatter.StyleRed.Render(fmt.Sprintf("%d off", summary.OffCount)),
		formatter.Bold(formatter.FormatHours(domain.RoundHours(summary.TotalDuration))),
	)))

	schedule := buildSchedule(rep, summary.EmployeeName)

	headers := []string{"DATE", "DAY", "DUTY ON", "DUTY OFF", "DURATION", "RECORDS"}
	rows := make([][]string, 0, len(schedule))
	for _, day := range schedule {
		duration := day.Duration
		if duration == "" {
			duration = formatter.Dim("—")
		}
		rows = append(rows, []string{
			day.Date,
			day.Weekday,
			joinTimes(day.OnTimes),
			joinTimes(day.OffTimes),
			duration,
			fmt.Sprintf("%d", day.Records),
		})
	}
	fmt.Println(formatter.RenderTable(headers, rows))

	printInsights(rep, summary)

	if csvOut != "" {
		if err := writeScheduleCSV(csvOut, summary.EmployeeName, schedule); err != nil {
			return err
		}
		fmt.Printf("Created %s\n", csvOut)
	}
	return nil
}

func findPerson(rep *domain.Report, name string) (domain.PersonSummary, bool) {
	for _, p := range rep.ByPerson {
		if strings.EqualFold(p.EmployeeName, name) {
			return p, true
		}
	}
	return domain.PersonSummary{}, false
}

// scheduleDay is one row of the lookup table: every duty-on and duty-off
// time for one date plus the summed completed duration.
type scheduleDay struct {
	Date     string
	Weekday  string
	OnTimes  []string
	OffTimes []string
	Duration string
	Records  int
}

func buildSchedule(rep *domain.Report, name string) []scheduleDay {
	byDate := make(map[string]*scheduleDay)
	var dates []string

	get := func(date string, at time.Time) *scheduleDay {
		d, ok := byDate[date]
		if !ok {
			d = &scheduleDay{Date: date, Weekday: at.Weekday().String()}
			byDate[date] = d
			dates = append(dates, date)
		}
		return d
	}

	for _, ev := range rep.Events {
		if !strings.EqualFold(ev.EmployeeName, name) {
			continue
		}
		d := get(ev.Date(), ev.At)
		d.Records++
		if ev.Status == domain.StatusDutyOn {
			d.OnTimes = append(d.OnTimes, ev.At.Format("15:04:05"))
		} else {
			d.OffTimes = append(d.OffTimes, ev.At.Format("15:04:05"))
		}
	}

	durations := make(map[string]time.Duration)
	for _, s := range rep.Sessions {
		if s.Outcome != domain.OutcomeCompleted || !strings.EqualFold(s.EmployeeName, name) {
			continue
		}
		durations[s.Date()] += *s.Duration
	}

	sort.Strings(dates)
	out := make([]scheduleDay, 0, len(dates))
	for _, date := range dates {
		d := byDate[date]
		if dur, ok := durations[date]; ok {
			d.Duration = formatter.FormatHours(domain.RoundHours(dur))
		}
		sort.Strings(d.OnTimes)
		sort.Strings(d.OffTimes)
		out = append(out, *d)
	}
	return out
}

func printInsights(rep *domain.Report, p domain.PersonSummary) {
	fmt.Println(formatter.Header("Insights"))

	rangeDays := int(p.LastActivity.Sub(p.FirstActivity).Hours()/24) + 1
	avg := 0.0
	if p.ActiveDays > 0 {
		avg = float64(p.OnCount+p.OffCount) / float64(p.ActiveDays)
	}
	fmt.Printf("First record   %s\n", formatter.Timestamp(p.FirstActivity))
	fmt.Printf("Last record    %s\n", formatter.Timestamp(p.LastActivity))
	fmt.Printf("Date range     %s\n", formatter.Count(rangeDays, "day", "days"))
	fmt.Printf("Records/day    %.1f\n", avg)
	if h, ok := commonOnHour(rep, p.EmployeeName); ok {
		fmt.Printf("Usual duty-on  %02d:00\n", h)
	}

	// Last five events, most recent first.
	var recent []domain.DutyEvent
	for _, ev := range rep.Events {
		if strings.EqualFold(ev.EmployeeName, p.EmployeeName) {
			recent = append(recent, ev)
		}
	}
	sort.Slice(recent, func(i, j int) bool { return recent[i].At.After(recent[j].At) })
	if len(recent) > 5 {
		recent = recent[:5]
	}
	fmt.Println()
	fmt.Println(formatter.Header("Recent Activity"))
	for _, ev := range recent {
		fmt.Printf("%s  %s\n", formatter.Timestamp(ev.At), formatter.StatusPill(ev.Status))
	}
}

// commonOnHour returns the most frequent duty-on hour for the employee.
func commonOnHour(rep *domain.Report, name string) (int, bool) {
	var counts [24]int
	found := false
	for _, ev := range rep.Events {
		if ev.Status == domain.StatusDutyOn && strings.EqualFold(ev.EmployeeName, name) {
			counts[ev.At.Hour()]++
			found = true
		}
	}
	if !found {
		return 0, false
	}
	best := 0
	for h := 1; h < 24; h++ {
		if counts[h] > counts[best] {
			best = h
		}
	}
	return best, true
}

func joinTimes(times []string) string {
	if len(times) == 0 {
		return formatter.Dim("—")
	}
	return strings.Join(times, ", ")
}

func writeScheduleCSV(path, name string, schedule []scheduleDay) error {
	rows := [][]string{{"Date", "Day", "Name", "Duty_On", "Duty_Off", "Work_Duration", "Total_Records"}}
	for _, d := range schedule {
		rows = append(rows, []string{
			d.Date,
			d.Weekday,
			name,
			strings.Join(d.OnTimes, " "),
			strings.Join(d.OffTimes, " "),
			d.Duration,
			fmt.Sprintf("%d", d.Records),
		})
	}
	return report.WriteRawCSV(path, rows)
}
