// internal/app/upstream/sources.go
package upstream

import (
	"context"

	"github.com/dalemusser/classboard/internal/domain/classscope"
	"github.com/dalemusser/classboard/internal/domain/models"
)

// ProfileSource resolves a teacher's class scope from the explicit classes
// list on the profile. Deployments that do not expose the list yield
// ErrNoData so resolution can fall through to the student roster.
type ProfileSource struct {
	c *Client
}

// NewProfileSource builds the primary scope source over c.
func NewProfileSource(c *Client) *ProfileSource {
	return &ProfileSource{c: c}
}

// Classes implements classscope.Source.
func (s *ProfileSource) Classes(ctx context.Context) ([]models.TeacherClass, error) {
	profile, err := s.c.FetchProfile(ctx)
	if err != nil {
		return nil, err
	}
	if profile.Teacher.Classes == nil {
		return nil, classscope.ErrNoData
	}
	return profile.Teacher.Classes, nil
}

// StudentSource reconstructs the class scope from the teacher's student
// roster: every distinct (grade, section) placement observed across the
// students, in first-seen order.
type StudentSource struct {
	c *Client
}

// NewStudentSource builds the fallback scope source over c.
func NewStudentSource(c *Client) *StudentSource {
	return &StudentSource{c: c}
}

// Classes implements classscope.Source.
func (s *StudentSource) Classes(ctx context.Context) ([]models.TeacherClass, error) {
	students, err := s.c.ListStudents(ctx)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, classscope.ErrNoData
	}
	classes := make([]models.TeacherClass, 0, len(students))
	for _, st := range students {
		classes = append(classes, models.TeacherClass{Grade: st.Grade, Section: st.Section})
	}
	return classes, nil
}

// ScopeResolver wires the standard source order — profile first, student
// roster as fallback — into a classscope.Resolver.
func (c *Client) ScopeResolver() *classscope.Resolver {
	return classscope.NewResolver(c.log, NewProfileSource(c), NewStudentSource(c))
}
