// internal/domain/classscope/classscope.go

// Package classscope resolves the set of classes a teacher may act on and
// answers scope queries against it.
//
// Resolution walks an explicit ordered list of sources. The primary source
// is the profile's class list; when that yields no data the scope is
// reconstructed from the student roster. Losing every source degrades to an
// empty scope with the failure recorded — scope loss must never block the
// rest of the screen from rendering.
//
// The resolved scope is a UX hint only: it drives the grade/section pickers
// and a polite pre-check on writes. The school API independently enforces
// which classes a teacher may touch.
package classscope

import (
	"context"
	"errors"
	"sort"

	"github.com/dalemusser/classboard/internal/domain/models"
	"go.uber.org/zap"
)

// ErrNoData is returned by a Source that completed successfully but has no
// class data to offer; resolution falls through to the next source.
var ErrNoData = errors.New("classscope: source has no data")

// Source yields a teacher's classes from one origin.
type Source interface {
	// Classes returns the class list, ErrNoData to fall through, or any
	// other error for a failed fetch (which also falls through, recorded).
	Classes(ctx context.Context) ([]models.TeacherClass, error)
}

// Resolver owns the resolved class set and its derived views.
type Resolver struct {
	sources []Source
	log     *zap.Logger

	classes []models.TeacherClass
	err     error
}

// NewResolver builds a Resolver over the given sources, tried in order.
func NewResolver(logger *zap.Logger, sources ...Source) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{sources: sources, log: logger}
}

// Resolve walks the sources in order and keeps the first result, with
// duplicate (grade, section) pairs collapsed in first-seen order. A source
// failure is recorded and the walk continues; the recorded error survives
// even when a later source succeeds, so callers can tell the scope came
// from a fallback. When every source fails or has no data the resolved
// scope is empty.
func (r *Resolver) Resolve(ctx context.Context) []models.TeacherClass {
	r.classes = nil
	r.err = nil

	for _, src := range r.sources {
		classes, err := src.Classes(ctx)
		if errors.Is(err, ErrNoData) {
			continue
		}
		if err != nil {
			if r.err == nil {
				r.err = err
			}
			r.log.Warn("class scope source failed", zap.Error(err))
			continue
		}
		r.classes = dedupe(classes)
		return r.classes
	}

	return r.classes
}

// Classes returns the resolved set from the last Resolve call.
func (r *Resolver) Classes() []models.TeacherClass {
	return r.classes
}

// Err returns the first source failure recorded by the last Resolve call,
// or nil. A non-nil Err with a non-empty scope means a fallback supplied
// the data.
func (r *Resolver) Err() error {
	return r.err
}

// AssignedGrades returns the distinct grades in the resolved set, in
// ascending numeric order.
func (r *Resolver) AssignedGrades() []int {
	seen := make(map[int]struct{}, len(r.classes))
	grades := make([]int, 0, len(r.classes))
	for _, c := range r.classes {
		if _, ok := seen[c.Grade]; ok {
			continue
		}
		seen[c.Grade] = struct{}{}
		grades = append(grades, c.Grade)
	}
	sort.Ints(grades)
	return grades
}

// SectionsForGrade returns the distinct sections among classes matching
// grade, in ascending lexical order. Unassigned grades yield an empty slice.
func (r *Resolver) SectionsForGrade(grade int) []string {
	seen := make(map[string]struct{})
	sections := make([]string, 0)
	for _, c := range r.classes {
		if c.Grade != grade {
			continue
		}
		if _, ok := seen[c.Section]; ok {
			continue
		}
		seen[c.Section] = struct{}{}
		sections = append(sections, c.Section)
	}
	sort.Strings(sections)
	return sections
}

// IsAssigned reports whether (grade, section) is in the resolved set.
func (r *Resolver) IsAssigned(grade int, section string) bool {
	for _, c := range r.classes {
		if c.Grade == grade && c.Section == section {
			return true
		}
	}
	return false
}

func dedupe(classes []models.TeacherClass) []models.TeacherClass {
	seen := make(map[models.TeacherClass]struct{}, len(classes))
	out := make([]models.TeacherClass, 0, len(classes))
	for _, c := range classes {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
