// Package reconcile pairs duty-on/duty-off events into work sessions.
//
// The pairing is total and deterministic: every input event becomes the
// start or end of exactly one session, and unpaired events survive as
// tagged anomalies instead of being dropped.
package reconcile

import (
	"sort"
	"time"

	"github.com/alexanderramin/dutyreport/internal/domain"
	"github.com/google/uuid"
)

// Reconcile converts the event stream into work sessions. Events are
// grouped by employee and stable-sorted by timestamp (ties keep input
// order) before the scan; the input slice is not mutated.
func Reconcile(events []domain.DutyEvent) []domain.WorkSession {
	byEmployee := make(map[string][]domain.DutyEvent)
	var order []string
	for _, ev := range events {
		if _, seen := byEmployee[ev.EmployeeID]; !seen {
			order = append(order, ev.EmployeeID)
		}
		byEmployee[ev.EmployeeID] = append(byEmployee[ev.EmployeeID], ev)
	}
	sort.Strings(order)

	var sessions []domain.WorkSession
	for _, id := range order {
		sessions = append(sessions, reconcileEmployee(byEmployee[id])...)
	}
	return sessions
}

// reconcileEmployee scans one employee's ordered stream keeping at most
// one open session.
func reconcileEmployee(events []domain.DutyEvent) []domain.WorkSession {
	sorted := make([]domain.DutyEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].At.Equal(sorted[j].At) {
			return sorted[i].At.Before(sorted[j].At)
		}
		return sorted[i].Seq < sorted[j].Seq
	})

	var sessions []domain.WorkSession
	var open *domain.WorkSession

	for _, ev := range sorted {
		switch ev.Status {
		case domain.StatusDutyOn:
			if open != nil {
				// Two consecutive duty-on events: the first pairing is
				// lost, not the record. Close as unmatched and reopen.
				open.Outcome = domain.OutcomeUnmatchedOpen
				sessions = append(sessions, *open)
			}
			open = newSession(ev)
			start := ev.At
			open.Start = &start

		case domain.StatusDutyOff:
			end := ev.At
			if open == nil {
				// Orphan duty-off.
				s := newSession(ev)
				s.End = &end
				s.Outcome = domain.OutcomeUnmatchedClose
				sessions = append(sessions, *s)
				continue
			}
			open.End = &end
			if end.Before(*open.Start) {
				open.Outcome = domain.OutcomeInvertedDuration
			} else {
				d := end.Sub(*open.Start).Truncate(time.Second)
				open.Outcome = domain.OutcomeCompleted
				open.Duration = &d
			}
			sessions = append(sessions, *open)
			open = nil
		}
	}

	if open != nil {
		open.Outcome = domain.OutcomeUnmatchedOpen
		sessions = append(sessions, *open)
	}
	return sessions
}

func newSession(ev domain.DutyEvent) *domain.WorkSession {
	return &domain.WorkSession{
		ID:           uuid.New().String(),
		EmployeeID:   ev.EmployeeID,
		EmployeeName: ev.EmployeeName,
	}
}
