package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/dutyreport/internal/config"
	"github.com/alexanderramin/dutyreport/internal/loader"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T, csvContent string) *App {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "duty_log.csv")
	require.NoError(t, os.WriteFile(path, []byte(csvContent), 0o644))

	return &App{
		Config: &config.Config{
			InputGlob: path,
			OutputDir: dir,
			HTMLPath:  filepath.Join(dir, "dash.html"),
		},
		Loader:        loader.New(""),
		IsInteractive: func() bool { return false },
	}
}

const sampleLog = "9218,shilpi,DutyOn,2025-10-09 09:36:14\n" +
	"9218,shilpi,DutyOff,2025-10-09 19:07:23\n" +
	"1001,arun,DutyOn,2025-10-09 08:00:00\n" +
	"1001,arun,DutyOff,2025-10-09 16:00:00\n" +
	"1001,arun,DutyOn,2025-10-10 08:00:00\n"

func loadedModel(t *testing.T, app *App) *dashboardModel {
	t.Helper()
	m := newDashboardModel(app)
	msg := m.loadData()()
	loaded, ok := msg.(reportLoadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.err)
	updated, _ := m.Update(loaded)
	return updated.(*dashboardModel)
}

func TestDashboardLoadsReport(t *testing.T) {
	m := loadedModel(t, testApp(t, sampleLog))

	assert.False(t, m.loading)
	require.NotNil(t, m.report)
	assert.Len(t, m.report.ByPerson, 2)

	view := m.View()
	assert.Contains(t, view, "Overview")
	assert.Contains(t, view, "5")
	assert.Contains(t, view, "2025-10-09")
}

func TestDashboardLoadError(t *testing.T) {
	app := testApp(t, sampleLog)
	app.Config.InputGlob = filepath.Join(t.TempDir(), "absent-*.csv")

	m := newDashboardModel(app)
	msg := m.loadData()()
	loaded, ok := msg.(reportLoadedMsg)
	require.True(t, ok)
	require.Error(t, loaded.err)

	updated, _ := m.Update(loaded)
	view := updated.(*dashboardModel).View()
	assert.Contains(t, view, "Error:")
}

func TestDashboardTabSwitching(t *testing.T) {
	m := loadedModel(t, testApp(t, sampleLog))

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	m = updated.(*dashboardModel)
	assert.Equal(t, tabEmployees, m.tab)
	assert.Contains(t, m.View(), "arun")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(*dashboardModel)
	assert.Equal(t, tabWorkHours, m.tab)
	assert.Contains(t, m.View(), "9.52")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'4'}})
	m = updated.(*dashboardModel)
	assert.Equal(t, tabAnomalies, m.tab)
	assert.Contains(t, m.View(), "Missing Off")
}

func TestDashboardCursorClampedToRows(t *testing.T) {
	m := loadedModel(t, testApp(t, sampleLog))

	// Overview has two daily rows; the cursor must not run past them.
	for i := 0; i < 10; i++ {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
		m = updated.(*dashboardModel)
	}
	assert.Equal(t, 1, m.cursor)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	m = updated.(*dashboardModel)
	assert.Equal(t, 0, m.cursor)
}

func TestDashboardEmployeeFilter(t *testing.T) {
	m := loadedModel(t, testApp(t, sampleLog))

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	m = updated.(*dashboardModel)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	m = updated.(*dashboardModel)
	require.True(t, m.filtering)

	for _, r := range "shi" {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(*dashboardModel)
	}
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(*dashboardModel)

	assert.False(t, m.filtering)
	people := m.filteredPeople()
	require.Len(t, people, 1)
	assert.Equal(t, "shilpi", people[0].EmployeeName)

	// esc clears the filter.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(*dashboardModel)
	assert.Len(t, m.filteredPeople(), 2)
}

func TestDashboardStatusCycle(t *testing.T) {
	m := loadedModel(t, testApp(t, sampleLog))

	assert.Equal(t, filterAll, m.status)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	m = updated.(*dashboardModel)
	assert.Equal(t, filterOn, m.status)
	assert.Contains(t, m.renderFooter(), "DutyOn")
}
