package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/dutyreport/internal/report"
	"github.com/spf13/cobra"
)

func newHTMLCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "html",
		Short: "Generate the static HTML dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if outPath == "" {
				outPath = app.Config.HTMLPath
			}
			return generateHTML(app, outPath)
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Output path for the HTML page")

	return cmd
}

func runHTML(app *App) error {
	return generateHTML(app, app.Config.HTMLPath)
}

func generateHTML(app *App, path string) error {
	rep, res, err := app.loadReport("")
	if err != nil {
		return err
	}
	printSkipped(res)

	meta := report.Meta{
		SourceFiles: res.Files,
		SkippedRows: len(res.Skipped),
		GeneratedAt: time.Now(),
	}
	if err := report.WriteHTML(path, rep, meta); err != nil {
		return err
	}
	fmt.Printf("Created %s\n", path)
	return nil
}
