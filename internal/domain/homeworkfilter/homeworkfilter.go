// internal/domain/homeworkfilter/homeworkfilter.go

// Package homeworkfilter derives the displayed assignment list from the full
// candidate set and the screen's current criteria, and classifies due-date
// status for display grouping.
//
// Filtering is pure and synchronous: given the same (assignments, criteria)
// the output is the same, in input order. One policy sits above it: when the
// criteria carry a complete date range, the local set is NOT filtered — a
// remote range query supersedes it, because the locally loaded set may not
// contain everything the range covers. That branch is driven by the
// homeworkscreen package; Apply itself never sees ranged criteria.
package homeworkfilter

import (
	"strings"

	"github.com/dalemusser/classboard/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
)

// Criteria is the screen's current filter state. It is ephemeral: rebuilt on
// every input change and never persisted. Zero values mean "unset" — an
// unset criterion matches everything.
type Criteria struct {
	Search  string
	Grade   int
	Section string
	From    models.DateOnly
	To      models.DateOnly
}

// HasDateRange reports whether both ends of the date range are set, which
// is what switches the screen from local filtering to a remote range query.
// A half-open range does nothing.
func (c Criteria) HasDateRange() bool {
	return !c.From.IsZero() && !c.To.IsZero()
}

// Apply filters list by the conjunction of the search, grade, and section
// predicates, preserving input order. The search term matches
// case-insensitively against title or description.
func Apply(list []models.Homework, c Criteria) []models.Homework {
	out := make([]models.Homework, 0, len(list))
	needle := text.Fold(strings.TrimSpace(c.Search))
	for _, hw := range list {
		if needle != "" &&
			!strings.Contains(text.Fold(hw.Title), needle) &&
			!strings.Contains(text.Fold(hw.Description), needle) {
			continue
		}
		if c.Grade != 0 && hw.Grade != c.Grade {
			continue
		}
		if c.Section != "" && hw.Section != c.Section {
			continue
		}
		out = append(out, hw)
	}
	return out
}

// Status classifies an assignment by its due date for display grouping.
type Status string

const (
	StatusOverdue  Status = "overdue"
	StatusDueToday Status = "due-today"
	StatusActive   Status = "active"
)

// StatusOf classifies due against today. The comparison is date-only; time
// of day never matters.
func StatusOf(due, today models.DateOnly) Status {
	switch {
	case due.Before(today.Time):
		return StatusOverdue
	case due.Equal(today.Time):
		return StatusDueToday
	default:
		return StatusActive
	}
}

// Stats are the dashboard counters shown above the assignment list.
type Stats struct {
	Total   int `json:"totalAssignments"`
	Today   int `json:"todayAssignments"`
	Active  int `json:"pendingAssignments"`
	Overdue int `json:"completedAssignments"`
}

// Summarize computes the dashboard counters over the full (unfiltered) set.
// Today counts assignments created today (the Date field), not ones due
// today.
func Summarize(list []models.Homework, today models.DateOnly) Stats {
	s := Stats{Total: len(list)}
	for _, hw := range list {
		if hw.Date.Equal(today.Time) {
			s.Today++
		}
		switch StatusOf(hw.DueDate, today) {
		case StatusActive:
			s.Active++
		case StatusOverdue:
			s.Overdue++
		}
	}
	return s
}
