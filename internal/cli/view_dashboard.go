package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dutyreport/internal/cli/formatter"
	"github.com/alexanderramin/dutyreport/internal/domain"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ── tabs ─────────────────────────────────────────────────────────────────────

type dashboardTab int

const (
	tabOverview dashboardTab = iota
	tabEmployees
	tabWorkHours
	tabAnomalies
)

var tabTitles = []string{"Overview", "Employees", "Work Hours", "Anomalies"}

// ── messages ─────────────────────────────────────────────────────────────────

// reportLoadedMsg signals that the duty log has been loaded and aggregated.
type reportLoadedMsg struct {
	report  *domain.Report
	skipped int
	err     error
}

// ── model ────────────────────────────────────────────────────────────────────

// statusFilter narrows the employee table to one event status.
type statusFilter int

const (
	filterAll statusFilter = iota
	filterOn
	filterOff
)

func (f statusFilter) String() string {
	switch f {
	case filterOn:
		return "DutyOn"
	case filterOff:
		return "DutyOff"
	default:
		return "All"
	}
}

// dashboardModel is the interactive dashboard: a tabbed, filterable view
// over one aggregated report.
type dashboardModel struct {
	app *App

	loading bool
	err     error
	report  *domain.Report
	skipped int

	tab       dashboardTab
	cursor    int
	status    statusFilter
	filter    textinput.Model
	filtering bool

	width  int
	height int
}

func newDashboardModel(app *App) *dashboardModel {
	ti := textinput.New()
	ti.Placeholder = "filter by name"
	ti.CharLimit = 40
	ti.Width = 24
	return &dashboardModel{app: app, loading: true, filter: ti}
}

func (m *dashboardModel) Init() tea.Cmd {
	return m.loadData()
}

func (m *dashboardModel) loadData() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		rep, res, err := app.loadReport("")
		if err != nil {
			return reportLoadedMsg{err: err}
		}
		return reportLoadedMsg{report: rep, skipped: len(res.Skipped)}
	}
}

// ── update ───────────────────────────────────────────────────────────────────

func (m *dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.report = msg.report
		m.skipped = msg.skipped
		m.cursor = 0
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "enter", "esc":
				m.filtering = false
				m.filter.Blur()
				m.cursor = 0
				return m, nil
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				return m, cmd
			}
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab", "right", "l":
			m.tab = (m.tab + 1) % dashboardTab(len(tabTitles))
			m.cursor = 0
		case "shift+tab", "left", "h":
			m.tab = (m.tab + dashboardTab(len(tabTitles)) - 1) % dashboardTab(len(tabTitles))
			m.cursor = 0
		case "1", "2", "3", "4":
			m.tab = dashboardTab(int(msg.String()[0] - '1'))
			m.cursor = 0
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < m.rowCount()-1 {
				m.cursor++
			}
		case "s":
			m.status = (m.status + 1) % 3
		case "/":
			if m.tab == tabEmployees || m.tab == tabWorkHours {
				m.filtering = true
				m.filter.Focus()
				return m, textinput.Blink
			}
		case "esc":
			m.filter.SetValue("")
			m.cursor = 0
		case "r":
			m.loading = true
			m.err = nil
			return m, m.loadData()
		}
	}

	return m, nil
}

func (m *dashboardModel) rowCount() int {
	if m.report == nil {
		return 0
	}
	switch m.tab {
	case tabEmployees:
		return len(m.filteredPeople())
	case tabWorkHours:
		return len(m.filteredWorkHours())
	case tabAnomalies:
		return len(m.report.Anomalies())
	default:
		return len(m.report.Daily)
	}
}

func (m *dashboardModel) nameMatches(name string) bool {
	q := strings.TrimSpace(m.filter.Value())
	return q == "" || strings.Contains(strings.ToLower(name), strings.ToLower(q))
}

func (m *dashboardModel) filteredPeople() []domain.PersonSummary {
	var out []domain.PersonSummary
	for _, p := range m.report.ByPerson {
		if m.nameMatches(p.EmployeeName) {
			out = append(out, p)
		}
	}
	return out
}

func (m *dashboardModel) filteredWorkHours() []domain.WorkHoursRow {
	var out []domain.WorkHoursRow
	for _, w := range m.report.WorkHours {
		if m.nameMatches(w.EmployeeName) {
			out = append(out, w)
		}
	}
	return out
}

// ── view ─────────────────────────────────────────────────────────────────────

func (m *dashboardModel) View() string {
	if m.loading {
		return "\n  " + formatter.Dim("Loading duty log...")
	}
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+m.err.Error()) +
			"\n\n  " + formatter.Dim("r retry · q quit") + "\n"
	}
	if m.report == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n  " + m.renderTabs() + "\n\n")

	switch m.tab {
	case tabEmployees:
		b.WriteString(m.renderEmployees())
	case tabWorkHours:
		b.WriteString(m.renderWorkHours())
	case tabAnomalies:
		b.WriteString(m.renderAnomalies())
	default:
		b.WriteString(m.renderOverview())
	}

	b.WriteString("\n  " + m.renderFooter() + "\n")
	return b.String()
}

func (m *dashboardModel) renderTabs() string {
	parts := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		label := fmt.Sprintf("%d %s", i+1, title)
		if dashboardTab(i) == m.tab {
			parts[i] = formatter.StyleHeader.Render(label)
		} else {
			parts[i] = formatter.Dim(label)
		}
	}
	return strings.Join(parts, formatter.Dim("  │  "))
}

func (m *dashboardModel) renderFooter() string {
	if m.filtering {
		return m.filter.View()
	}
	hints := []string{"tab switch", "j/k move", "r reload", "q quit"}
	switch m.tab {
	case tabEmployees, tabWorkHours:
		hints = append([]string{"/ filter"}, hints...)
		if m.filter.Value() != "" {
			hints = append([]string{"esc clear"}, hints...)
		}
	case tabOverview:
		hints = append([]string{fmt.Sprintf("s status: %s", m.status)}, hints...)
	}
	return formatter.Dim(strings.Join(hints, " · "))
}

func (m *dashboardModel) renderOverview() string {
	rep := m.report
	var on, off, hours int
	var totalHours float64
	for _, p := range rep.ByPerson {
		on += p.OnCount
		off += p.OffCount
		totalHours += domain.RoundHours(p.TotalDuration)
	}
	hours = int(totalHours)

	anomalies := len(rep.Anomalies())
	metrics := []string{
		metricCard(fmt.Sprintf("%d", len(rep.Events)), "records"),
		metricCard(fmt.Sprintf("%d", len(rep.ByPerson)), "employees"),
		metricCard(fmt.Sprintf("%d", on), "duty on"),
		metricCard(fmt.Sprintf("%d", off), "duty off"),
		metricCard(fmt.Sprintf("%d", hours), "hours"),
	}
	if anomalies > 0 {
		metrics = append(metrics, formatter.StyleYellow.Render(fmt.Sprintf("▲ %d anomalies", anomalies)))
	}
	if m.skipped > 0 {
		metrics = append(metrics, formatter.StyleRed.Render(fmt.Sprintf("✕ %d rows skipped", m.skipped)))
	}

	var b strings.Builder
	b.WriteString("  " + strings.Join(metrics, "   ") + "\n\n")

	headers := []string{"DATE", "ON", "OFF", "SESSIONS", "AVG"}
	rows := make([][]string, 0, len(rep.Daily))
	for i, d := range rep.Daily {
		onCell := fmt.Sprintf("%d", d.OnCount)
		offCell := fmt.Sprintf("%d", d.OffCount)
		switch m.status {
		case filterOn:
			offCell = formatter.Dim(offCell)
		case filterOff:
			onCell = formatter.Dim(onCell)
		}
		date := d.Date
		if i == m.cursor {
			date = formatter.StyleGreen.Render("▸ ") + formatter.Bold(d.Date)
		} else {
			date = "  " + date
		}
		rows = append(rows, []string{
			date,
			onCell,
			offCell,
			fmt.Sprintf("%d", d.TotalSessions),
			formatter.FormatDuration(d.AvgDuration),
		})
	}
	b.WriteString(indent(formatter.RenderTable(headers, m.window(rows))))
	return b.String()
}

func (m *dashboardModel) renderEmployees() string {
	people := m.filteredPeople()
	if len(people) == 0 {
		return "  " + formatter.Dim("No employees match the filter.") + "\n"
	}

	headers := []string{"", "ID", "NAME", "SESSIONS", "HOURS", "DAYS", "ANOMALOUS"}
	rows := make([][]string, 0, len(people))
	for i, p := range people {
		cursor := " "
		name := p.EmployeeName
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸")
			name = formatter.Bold(name)
		}
		anomalous := fmt.Sprintf("%d", p.Incomplete)
		if p.Incomplete > 0 {
			anomalous = formatter.StyleYellow.Render(anomalous)
		}
		rows = append(rows, []string{
			cursor,
			p.EmployeeID,
			name,
			fmt.Sprintf("%d", p.TotalSessions),
			formatter.FormatHours(domain.RoundHours(p.TotalDuration)),
			fmt.Sprintf("%d", p.ActiveDays),
			anomalous,
		})
	}

	table := indent(formatter.RenderTable(headers, m.window(rows)))

	// Detail pane for the selected employee on wide terminals.
	if m.width >= 90 && m.cursor < len(people) {
		detail := m.renderEmployeeDetail(people[m.cursor])
		left := lipgloss.NewStyle().Width(m.width * 3 / 5).Render(table)
		right := lipgloss.NewStyle().Width(m.width*2/5 - 4).Render(detail)
		return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}
	return table
}

func (m *dashboardModel) renderEmployeeDetail(p domain.PersonSummary) string {
	var b strings.Builder
	b.WriteString(formatter.StyleBold.Render(p.EmployeeName) + "\n")
	b.WriteString(formatter.Dim(p.EmployeeID) + "\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", formatter.Dim("First  "), formatter.Timestamp(p.FirstActivity)))
	b.WriteString(fmt.Sprintf("%s %s\n", formatter.Dim("Last   "), formatter.Timestamp(p.LastActivity)))
	b.WriteString(fmt.Sprintf("%s %s / %s\n",
		formatter.Dim("Events "),
		formatter.StyleGreen.Render(fmt.Sprintf("%d on", p.OnCount)),
		formatter.StyleRed.Render(fmt.Sprintf("%d off", p.OffCount)),
	))
	b.WriteString(fmt.Sprintf("%s %s over %d days\n",
		formatter.Dim("Logged "),
		formatter.Bold(formatter.FormatHours(domain.RoundHours(p.TotalDuration))),
		p.ActiveDays,
	))
	if p.Incomplete > 0 {
		b.WriteString("\n" + formatter.StyleYellow.Render(
			fmt.Sprintf("▲ %d session(s) could not be paired", p.Incomplete)) + "\n")
	}
	return b.String()
}

func (m *dashboardModel) renderWorkHours() string {
	hours := m.filteredWorkHours()
	if len(hours) == 0 {
		return "  " + formatter.Dim("No completed sessions.") + "\n"
	}

	headers := []string{"", "NAME", "DATE", "ON", "OFF", "HOURS"}
	rows := make([][]string, 0, len(hours))
	for i, w := range hours {
		cursor := " "
		name := w.EmployeeName
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸")
			name = formatter.Bold(name)
		}
		rows = append(rows, []string{
			cursor,
			name,
			w.Date,
			w.Start.Format("15:04:05"),
			w.End.Format("15:04:05"),
			formatter.FormatHours(w.Hours),
		})
	}
	return indent(formatter.RenderTable(headers, m.window(rows)))
}

func (m *dashboardModel) renderAnomalies() string {
	anomalies := m.report.Anomalies()
	if len(anomalies) == 0 {
		return "  " + formatter.StyleGreen.Render("No anomalies. Every session paired cleanly.") + "\n"
	}

	headers := []string{"", "ID", "NAME", "DATE", "KIND", "START", "END"}
	rows := make([][]string, 0, len(anomalies))
	for i, s := range anomalies {
		cursor := " "
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸")
		}
		rows = append(rows, []string{
			cursor,
			s.EmployeeID,
			s.EmployeeName,
			s.Date(),
			formatter.OutcomePill(s.Outcome),
			formatter.OptionalTime(s.Start),
			formatter.OptionalTime(s.End),
		})
	}
	return indent(formatter.RenderTable(headers, m.window(rows)))
}

// window returns the slice of rows around the cursor that fits the
// terminal height, so long tables scroll instead of overflowing.
func (m *dashboardModel) window(rows [][]string) [][]string {
	visible := m.height - 10
	if visible < 5 {
		visible = 5
	}
	if len(rows) <= visible {
		return rows
	}
	start := m.cursor - visible/2
	if start < 0 {
		start = 0
	}
	if start+visible > len(rows) {
		start = len(rows) - visible
	}
	return rows[start : start+visible]
}

func metricCard(value, label string) string {
	return formatter.Bold(value) + " " + formatter.Dim(label)
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = "  " + l
		}
	}
	return strings.Join(lines, "\n")
}
