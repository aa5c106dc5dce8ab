package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/dutyreport/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeCommandWritesReports(t *testing.T) {
	app := testApp(t, sampleLog)
	outDir := filepath.Join(t.TempDir(), "reports")

	root := NewRootCmd(app)
	root.SetArgs([]string{"analyze", "--out", outDir})
	require.NoError(t, root.Execute())

	for _, name := range []string{
		report.ByPersonFile, report.ByDateFile,
		report.DailySummaryFile, report.WorkHoursFile,
	} {
		assert.FileExists(t, filepath.Join(outDir, name))
	}
}

func TestAnalyzeCommandExplicitFiles(t *testing.T) {
	app := testApp(t, sampleLog)
	extra := filepath.Join(t.TempDir(), "more.csv")
	require.NoError(t, os.WriteFile(extra,
		[]byte("7,mira,DutyOn,2025-10-11 08:00:00\n7,mira,DutyOff,2025-10-11 12:00:00\n"), 0o644))

	outDir := t.TempDir()
	root := NewRootCmd(app)
	root.SetArgs([]string{"analyze", extra, "--out", outDir})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(outDir, report.WorkHoursFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "mira")
	assert.NotContains(t, string(data), "shilpi", "explicit files replace the configured glob")
}

func TestAnalyzeCommandNoWrite(t *testing.T) {
	app := testApp(t, sampleLog)
	outDir := filepath.Join(t.TempDir(), "untouched")

	root := NewRootCmd(app)
	root.SetArgs([]string{"analyze", "--out", outDir, "--no-write"})
	require.NoError(t, root.Execute())

	_, err := os.Stat(outDir)
	assert.True(t, os.IsNotExist(err))
}

func TestAnalyzeCommandMissingInput(t *testing.T) {
	app := testApp(t, sampleLog)
	app.Config.InputGlob = filepath.Join(t.TempDir(), "absent-*.csv")

	root := NewRootCmd(app)
	root.SetArgs([]string{"analyze"})
	require.Error(t, root.Execute())
}

func TestHTMLCommand(t *testing.T) {
	app := testApp(t, sampleLog)
	out := filepath.Join(t.TempDir(), "dash.html")

	root := NewRootCmd(app)
	root.SetArgs([]string{"html", "--out", out})
	require.NoError(t, root.Execute())
	assert.FileExists(t, out)
}

func TestLookupCommandRequiresNameWhenNotInteractive(t *testing.T) {
	app := testApp(t, sampleLog)

	root := NewRootCmd(app)
	root.SetArgs([]string{"lookup"})
	err := root.Execute()
	require.Error(t, err)
	assert.ErrorContains(t, err, "non-interactive")
}

func TestRootHelpWhenNotInteractive(t *testing.T) {
	app := testApp(t, sampleLog)
	root := NewRootCmd(app)
	root.SetArgs([]string{})
	assert.NoError(t, root.Execute())
}
