package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// launcher menu actions.
const (
	actionDashboard = "dashboard"
	actionLookup    = "lookup"
	actionHTML      = "html"
	actionAnalyze   = "analyze"
	actionQuit      = "quit"
)

// runLauncher shows the interactive menu a bare "dutyreport" opens on a
// terminal, looping until the user quits.
func runLauncher(app *App) error {
	for {
		var choice string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Duty Schedule Reports").
					Options(
						huh.NewOption("Interactive dashboard", actionDashboard),
						huh.NewOption("Employee lookup", actionLookup),
						huh.NewOption("Generate HTML dashboard", actionHTML),
						huh.NewOption("Run analysis and write CSV reports", actionAnalyze),
						huh.NewOption("Quit", actionQuit),
					).
					Value(&choice),
			),
		).WithShowHelp(false)

		if err := form.Run(); err != nil {
			return err
		}

		var err error
		switch choice {
		case actionDashboard:
			err = runDashboard(app)
		case actionLookup:
			err = runLookup(app)
		case actionHTML:
			err = runHTML(app)
		case actionAnalyze:
			err = runAnalyze(app)
		case actionQuit:
			return nil
		}
		if err != nil {
			// Keep the menu alive; a failed action is not fatal here.
			fmt.Printf("Error: %v\n\n", err)
		}
	}
}
