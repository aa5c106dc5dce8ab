// Package loader reads duty log CSV files into typed events.
//
// Rows have the shape ID,Name,Status,DateTime. A malformed row is
// recorded and skipped rather than aborting the load; a missing file or
// an unrecognizable header aborts with no partial result.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/dutyreport/internal/domain"
)

// expectedColumns is the canonical header row, also used to recognize
// and skip a leading header in otherwise headerless files.
var expectedColumns = []string{"ID", "Name", "Status", "DateTime"}

// RowError describes one skipped row.
type RowError struct {
	File string
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

// Result is the outcome of one load: the parsed events in input order,
// the rows that were skipped, and the files that contributed.
type Result struct {
	Events  []domain.DutyEvent
	Skipped []RowError
	Files   []string
}

// Loader parses duty log files with a configurable timestamp layout.
type Loader struct {
	layout string
}

// New returns a Loader. An empty layout falls back to the default
// "2006-01-02 15:04:05" wire format.
func New(layout string) *Loader {
	if layout == "" {
		layout = domain.TimestampLayout
	}
	return &Loader{layout: layout}
}

// Load reads a single CSV file.
func (l *Loader) Load(path string) (*Result, error) {
	res := &Result{}
	if err := l.loadInto(res, path); err != nil {
		return nil, err
	}
	return res, nil
}

// LoadGlob reads every file matching pattern, in lexical order, merging
// the events into one stream. Sequence numbers run continuously across
// files so input order survives the merge.
func (l *Loader) LoadGlob(pattern string) (*Result, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid input pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no input files match %q", pattern)
	}
	sort.Strings(matches)

	res := &Result{}
	for _, path := range matches {
		if err := l.loadInto(res, path); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (l *Loader) loadInto(res *Result, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening duty log: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // field count is validated per row
	r.TrimLeadingSpace = true

	line := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		line++

		if line == 1 {
			switch classifyFirstRow(record, l.layout) {
			case firstRowHeader:
				continue
			case firstRowUnknown:
				return fmt.Errorf("%s: unrecognized header %v (expected %v)",
					path, record, expectedColumns)
			}
		}

		ev, err := l.parseRow(record)
		if err != nil {
			res.Skipped = append(res.Skipped, RowError{File: path, Line: line, Err: err})
			continue
		}
		ev.Seq = len(res.Events)
		res.Events = append(res.Events, ev)
	}

	res.Files = append(res.Files, path)
	return nil
}

func (l *Loader) parseRow(record []string) (domain.DutyEvent, error) {
	if len(record) != len(expectedColumns) {
		return domain.DutyEvent{}, fmt.Errorf("expected %d fields, got %d",
			len(expectedColumns), len(record))
	}

	id := strings.TrimSpace(record[0])
	name := strings.TrimSpace(record[1])
	status := strings.TrimSpace(record[2])
	raw := strings.TrimSpace(record[3])

	if id == "" {
		return domain.DutyEvent{}, fmt.Errorf("empty employee ID")
	}
	if name == "" {
		return domain.DutyEvent{}, fmt.Errorf("empty employee name")
	}
	if !domain.ValidDutyStatuses[status] {
		return domain.DutyEvent{}, fmt.Errorf("invalid status %q", status)
	}

	at, err := time.ParseInLocation(l.layout, raw, time.Local)
	if err != nil {
		return domain.DutyEvent{}, fmt.Errorf("invalid timestamp %q (expected %s)", raw, l.layout)
	}

	return domain.DutyEvent{
		EmployeeID:   id,
		EmployeeName: name,
		Status:       domain.DutyStatus(status),
		At:           at,
	}, nil
}

type firstRowKind int

const (
	firstRowData firstRowKind = iota
	firstRowHeader
	firstRowUnknown
)

// classifyFirstRow distinguishes the canonical header, a plain data row
// (the original logs are headerless), and a file whose first row is
// neither, which indicates a foreign schema.
func classifyFirstRow(record []string, layout string) firstRowKind {
	if len(record) == len(expectedColumns) {
		header := true
		for i, col := range expectedColumns {
			if !strings.EqualFold(strings.TrimSpace(record[i]), col) {
				header = false
				break
			}
		}
		if header {
			return firstRowHeader
		}
	}

	if len(record) == len(expectedColumns) {
		status := strings.TrimSpace(record[2])
		if _, err := time.ParseInLocation(layout, strings.TrimSpace(record[3]), time.Local); err == nil ||
			domain.ValidDutyStatuses[status] {
			return firstRowData
		}
	}
	return firstRowUnknown
}
