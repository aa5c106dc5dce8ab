package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive duty dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(app)
		},
	}
}

func runDashboard(app *App) error {
	p := tea.NewProgram(newDashboardModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
