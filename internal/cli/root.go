package cli

import (
	"fmt"

	"github.com/alexanderramin/dutyreport/internal/aggregate"
	"github.com/alexanderramin/dutyreport/internal/config"
	"github.com/alexanderramin/dutyreport/internal/domain"
	"github.com/alexanderramin/dutyreport/internal/loader"
	"github.com/spf13/cobra"
)

// App holds the wiring shared by all CLI commands.
type App struct {
	Config *config.Config
	Loader *loader.Loader

	// IsInteractive reports whether stdin is an interactive terminal.
	// The launcher menu and the lookup picker only appear when it is.
	IsInteractive func() bool
}

// loadReport loads the input files and runs the full reconcile-and-
// aggregate pass. An empty pattern falls back to the configured glob.
func (a *App) loadReport(pattern string) (*domain.Report, *loader.Result, error) {
	if pattern == "" {
		pattern = a.Config.InputGlob
	}
	res, err := a.Loader.LoadGlob(pattern)
	if err != nil {
		return nil, nil, err
	}
	return aggregate.Run(res.Events), res, nil
}

// loadFiles is loadReport over explicit file paths instead of a glob.
func (a *App) loadFiles(paths []string) (*domain.Report, *loader.Result, error) {
	merged := &loader.Result{}
	for _, p := range paths {
		res, err := a.Loader.Load(p)
		if err != nil {
			return nil, nil, err
		}
		for _, ev := range res.Events {
			ev.Seq = len(merged.Events)
			merged.Events = append(merged.Events, ev)
		}
		merged.Skipped = append(merged.Skipped, res.Skipped...)
		merged.Files = append(merged.Files, res.Files...)
	}
	return aggregate.Run(merged.Events), merged, nil
}

// NewRootCmd creates the top-level "dutyreport" command and registers
// all subcommands against the provided App. Invoked bare on a terminal
// it opens the launcher menu; otherwise it prints help.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "dutyreport",
		Short:         "Duty schedule analysis and reporting",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runLauncher(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newAnalyzeCmd(app),
		newLookupCmd(app),
		newDashboardCmd(app),
		newHTMLCmd(app),
	)

	return root
}

func printSkipped(res *loader.Result) {
	if len(res.Skipped) == 0 {
		return
	}
	fmt.Printf("Skipped %d malformed row(s):\n", len(res.Skipped))
	for _, re := range res.Skipped {
		fmt.Printf("  %s\n", re.Error())
	}
}
