// Package report writes the derived artifacts: four CSV reports and a
// static HTML dashboard. All content comes from an already-built
// domain.Report; nothing here recomputes aggregates.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/dutyreport/internal/domain"
)

// Artifact file names, kept stable so downstream tooling can find them.
const (
	ByPersonFile     = "duty_schedule_by_person.csv"
	ByDateFile       = "duty_schedule_by_date.csv"
	DailySummaryFile = "daily_duty_summary.csv"
	WorkHoursFile    = "employee_work_hours.csv"
)

// WriteCSVReports writes the four summary CSVs into dir, creating it if
// needed. Output is deterministic: rerunning on the same input produces
// byte-identical files.
func WriteCSVReports(dir string, r *domain.Report) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := writeCSV(filepath.Join(dir, ByPersonFile), byPersonRows(r)); err != nil {
		return err
	}
	if err := writeCSV(filepath.Join(dir, ByDateFile), byDateRows(r)); err != nil {
		return err
	}
	if err := writeCSV(filepath.Join(dir, DailySummaryFile), dailyRows(r)); err != nil {
		return err
	}
	return writeCSV(filepath.Join(dir, WorkHoursFile), workHoursRows(r))
}

func byPersonRows(r *domain.Report) [][]string {
	rows := [][]string{{
		"ID", "Name", "Total_Sessions", "Completed_Sessions", "Incomplete_Sessions",
		"Total_Hours", "DutyOn_Count", "DutyOff_Count", "Active_Days",
		"First_Activity", "Last_Activity",
	}}
	for _, p := range r.ByPerson {
		rows = append(rows, []string{
			p.EmployeeID,
			p.EmployeeName,
			fmt.Sprintf("%d", p.TotalSessions),
			fmt.Sprintf("%d", p.Completed),
			fmt.Sprintf("%d", p.Incomplete),
			fmt.Sprintf("%.2f", domain.RoundHours(p.TotalDuration)),
			fmt.Sprintf("%d", p.OnCount),
			fmt.Sprintf("%d", p.OffCount),
			fmt.Sprintf("%d", p.ActiveDays),
			p.FirstActivity.Format(domain.TimestampLayout),
			p.LastActivity.Format(domain.TimestampLayout),
		})
	}
	return rows
}

func byDateRows(r *domain.Report) [][]string {
	rows := [][]string{{
		"Date", "Total_Sessions", "Completed_Sessions", "Incomplete_Sessions",
		"Total_Hours", "DutyOn_Count", "DutyOff_Count", "Employees",
		"First_Activity", "Last_Activity",
	}}
	for _, d := range r.ByDate {
		rows = append(rows, []string{
			d.Date,
			fmt.Sprintf("%d", d.TotalSessions),
			fmt.Sprintf("%d", d.Completed),
			fmt.Sprintf("%d", d.Incomplete),
			fmt.Sprintf("%.2f", domain.RoundHours(d.TotalDuration)),
			fmt.Sprintf("%d", d.OnCount),
			fmt.Sprintf("%d", d.OffCount),
			fmt.Sprintf("%d", d.Employees),
			d.FirstActivity.Format(domain.TimestampLayout),
			d.LastActivity.Format(domain.TimestampLayout),
		})
	}
	return rows
}

func dailyRows(r *domain.Report) [][]string {
	rows := [][]string{{
		"Date", "Total_DutyOn", "Total_DutyOff", "Total_Sessions",
		"Unique_Employees", "Avg_Duration_Hours",
	}}
	for _, d := range r.Daily {
		rows = append(rows, []string{
			d.Date,
			fmt.Sprintf("%d", d.OnCount),
			fmt.Sprintf("%d", d.OffCount),
			fmt.Sprintf("%d", d.TotalSessions),
			fmt.Sprintf("%d", d.UniqueEmployees),
			fmt.Sprintf("%.2f", domain.RoundHours(d.AvgDuration)),
		})
	}
	return rows
}

func workHoursRows(r *domain.Report) [][]string {
	rows := [][]string{{
		"ID", "Name", "Date", "Duty_On_Time", "Duty_Off_Time", "Work_Hours",
	}}
	for _, w := range r.WorkHours {
		rows = append(rows, []string{
			w.EmployeeID,
			w.EmployeeName,
			w.Date,
			w.Start.Format(domain.TimestampLayout),
			w.End.Format(domain.TimestampLayout),
			fmt.Sprintf("%.2f", w.Hours),
		})
	}
	return rows
}

// WriteRawCSV writes pre-rendered rows (header first) to path.
func WriteRawCSV(path string, rows [][]string) error {
	return writeCSV(path, rows)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
