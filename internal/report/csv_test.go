package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/dutyreport/internal/aggregate"
	"github.com/alexanderramin/dutyreport/internal/domain"
	"github.com/alexanderramin/dutyreport/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *domain.Report {
	events := testutil.NewEventStream().
		On("9218", "shilpi", "2025-10-09 09:36:14").
		Off("9218", "shilpi", "2025-10-09 19:07:23").
		On("1001", "arun", "2025-10-09 08:00:00").
		Off("1001", "arun", "2025-10-09 16:00:00").
		On("1001", "arun", "2025-10-10 08:00:00").
		Events()
	return aggregate.Run(events)
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteCSVReportsCreatesAllFour(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteCSVReports(dir, sampleReport()))

	for _, name := range []string{ByPersonFile, ByDateFile, DailySummaryFile, WorkHoursFile} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestWorkHoursCSVContent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteCSVReports(dir, sampleReport()))

	rows := readCSV(t, filepath.Join(dir, WorkHoursFile))
	require.Len(t, rows, 3, "header plus one row per completed session")
	assert.Equal(t, []string{"ID", "Name", "Date", "Duty_On_Time", "Duty_Off_Time", "Work_Hours"}, rows[0])

	// Sorted by name: arun then shilpi.
	assert.Equal(t, "1001", rows[1][0])
	assert.Equal(t, "8.00", rows[1][5])
	assert.Equal(t, []string{
		"9218", "shilpi", "2025-10-09",
		"2025-10-09 09:36:14", "2025-10-09 19:07:23", "9.52",
	}, rows[2])
}

func TestByPersonCSVCountsAnomaliesSeparately(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteCSVReports(dir, sampleReport()))

	rows := readCSV(t, filepath.Join(dir, ByPersonFile))
	require.Len(t, rows, 3)

	arun := rows[1]
	assert.Equal(t, "arun", arun[1])
	assert.Equal(t, "2", arun[2], "total sessions")
	assert.Equal(t, "1", arun[3], "completed")
	assert.Equal(t, "1", arun[4], "incomplete, never folded into hours")
	assert.Equal(t, "8.00", arun[5])
}

func TestDailySummaryCSVContent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteCSVReports(dir, sampleReport()))

	rows := readCSV(t, filepath.Join(dir, DailySummaryFile))
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Date", "Total_DutyOn", "Total_DutyOff", "Total_Sessions", "Unique_Employees", "Avg_Duration_Hours"}, rows[0])
	assert.Equal(t, "2025-10-09", rows[1][0])
	assert.Equal(t, "2", rows[1][1])
	assert.Equal(t, "2", rows[1][4])
}

func TestWriteCSVReportsIdempotent(t *testing.T) {
	rep := sampleReport()

	dirA, dirB := t.TempDir(), t.TempDir()
	require.NoError(t, WriteCSVReports(dirA, rep))
	require.NoError(t, WriteCSVReports(dirB, rep))

	for _, name := range []string{ByPersonFile, ByDateFile, DailySummaryFile, WorkHoursFile} {
		a, err := os.ReadFile(filepath.Join(dirA, name))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(dirB, name))
		require.NoError(t, err)
		assert.Equal(t, a, b, "%s must be byte-identical across reruns", name)
	}
}

func TestWriteCSVReportsUnwritableDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	require.NoError(t, WriteCSVReports(dir, sampleReport()), "missing directories are created")

	if os.Getuid() != 0 {
		readonly := t.TempDir()
		require.NoError(t, os.Chmod(readonly, 0o500))
		err := WriteCSVReports(filepath.Join(readonly, "sub"), sampleReport())
		assert.Error(t, err)
	}
}

func TestWriteRawCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.csv")
	rows := [][]string{{"Date", "Name"}, {"2025-10-09", "ana"}}
	require.NoError(t, WriteRawCSV(path, rows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Date,Name\n2025-10-09,ana\n", strings.ReplaceAll(string(data), "\r\n", "\n"))
}
