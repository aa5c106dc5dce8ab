package cli

import (
	"fmt"
	"path/filepath"

	"github.com/alexanderramin/dutyreport/internal/cli/formatter"
	"github.com/alexanderramin/dutyreport/internal/domain"
	"github.com/alexanderramin/dutyreport/internal/loader"
	"github.com/alexanderramin/dutyreport/internal/report"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	var outDir string
	var noWrite bool

	cmd := &cobra.Command{
		Use:   "analyze [file...]",
		Short: "Analyze duty logs and write the CSV reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				rep *domain.Report
				res *loader.Result
				err error
			)
			if len(args) > 0 {
				rep, res, err = app.loadFiles(args)
			} else {
				rep, res, err = app.loadReport("")
			}
			if err != nil {
				return err
			}

			if outDir == "" {
				outDir = app.Config.OutputDir
			}

			printAnalysis(rep, res)

			if noWrite {
				return nil
			}
			if err := report.WriteCSVReports(outDir, rep); err != nil {
				return err
			}
			for _, name := range []string{
				report.ByPersonFile, report.ByDateFile,
				report.DailySummaryFile, report.WorkHoursFile,
			} {
				fmt.Printf("Created %s\n", filepath.Join(outDir, name))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "Output directory for CSV reports")
	cmd.Flags().BoolVar(&noWrite, "no-write", false, "Print the analysis without writing reports")

	return cmd
}

func runAnalyze(app *App) error {
	rep, res, err := app.loadReport("")
	if err != nil {
		return err
	}
	printAnalysis(rep, res)
	if err := report.WriteCSVReports(app.Config.OutputDir, rep); err != nil {
		return err
	}
	fmt.Printf("Wrote CSV reports to %s\n", app.Config.OutputDir)
	return nil
}

func printAnalysis(rep *domain.Report, res *loader.Result) {
	fmt.Printf("Loaded %s from %s.\n",
		formatter.Count(len(rep.Events), "record", "records"),
		formatter.Count(len(res.Files), "file", "files"))
	printSkipped(res)
	fmt.Println()

	fmt.Println(formatter.Header("By Person"))
	headers := []string{"ID", "NAME", "SESSIONS", "COMPLETE", "ANOMALOUS", "HOURS", "DAYS", "LAST SEEN"}
	rows := make([][]string, 0, len(rep.ByPerson))
	for _, p := range rep.ByPerson {
		anomalous := fmt.Sprintf("%d", p.Incomplete)
		if p.Incomplete > 0 {
			anomalous = formatter.StyleYellow.Render(anomalous)
		}
		rows = append(rows, []string{
			p.EmployeeID,
			formatter.Bold(p.EmployeeName),
			fmt.Sprintf("%d", p.TotalSessions),
			fmt.Sprintf("%d", p.Completed),
			anomalous,
			formatter.FormatHours(domain.RoundHours(p.TotalDuration)),
			fmt.Sprintf("%d", p.ActiveDays),
			formatter.Timestamp(p.LastActivity),
		})
	}
	fmt.Println(formatter.RenderTable(headers, rows))

	fmt.Println(formatter.Header("By Date"))
	headers = []string{"DATE", "ON", "OFF", "SESSIONS", "COMPLETE", "EMPLOYEES", "HOURS"}
	rows = rows[:0]
	for _, d := range rep.ByDate {
		rows = append(rows, []string{
			d.Date,
			fmt.Sprintf("%d", d.OnCount),
			fmt.Sprintf("%d", d.OffCount),
			fmt.Sprintf("%d", d.TotalSessions),
			fmt.Sprintf("%d", d.Completed),
			fmt.Sprintf("%d", d.Employees),
			formatter.FormatHours(domain.RoundHours(d.TotalDuration)),
		})
	}
	fmt.Println(formatter.RenderTable(headers, rows))

	anomalies := rep.Anomalies()
	if len(anomalies) == 0 {
		fmt.Println(formatter.StyleGreen.Render("No anomalies found."))
		return
	}
	fmt.Println(formatter.Header("Anomalies"))
	headers = []string{"ID", "NAME", "DATE", "KIND", "START", "END"}
	rows = rows[:0]
	for _, s := range anomalies {
		rows = append(rows, []string{
			s.EmployeeID,
			s.EmployeeName,
			s.Date(),
			formatter.OutcomePill(s.Outcome),
			formatter.OptionalTime(s.Start),
			formatter.OptionalTime(s.End),
		})
	}
	fmt.Println(formatter.RenderTable(headers, rows))
}
