package classscope_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/dalemusser/classboard/internal/domain/classscope"
	"github.com/dalemusser/classboard/internal/domain/models"
	"go.uber.org/zap"
)

// sourceFunc adapts a function to the Source interface.
type sourceFunc func(ctx context.Context) ([]models.TeacherClass, error)

func (f sourceFunc) Classes(ctx context.Context) ([]models.TeacherClass, error) {
	return f(ctx)
}

func fixed(classes ...models.TeacherClass) classscope.Source {
	return sourceFunc(func(context.Context) ([]models.TeacherClass, error) {
		return classes, nil
	})
}

func noData() classscope.Source {
	return sourceFunc(func(context.Context) ([]models.TeacherClass, error) {
		return nil, classscope.ErrNoData
	})
}

func failing(err error) classscope.Source {
	return sourceFunc(func(context.Context) ([]models.TeacherClass, error) {
		return nil, err
	})
}

func TestResolve_PrimaryWins(t *testing.T) {
	r := classscope.NewResolver(zap.NewNop(),
		fixed(
			models.TeacherClass{Grade: 10, Section: "A"},
			models.TeacherClass{Grade: 10, Section: "B"},
			models.TeacherClass{Grade: 9, Section: "C"},
		),
		failing(errors.New("fallback must not run")),
	)
	r.Resolve(context.Background())

	if err := r.Err(); err != nil {
		t.Fatalf("unexpected recorded error: %v", err)
	}
	if got, want := r.AssignedGrades(), []int{9, 10}; !reflect.DeepEqual(got, want) {
		t.Errorf("AssignedGrades: got %v, want %v", got, want)
	}
	if got, want := r.SectionsForGrade(10), []string{"A", "B"}; !reflect.DeepEqual(got, want) {
		t.Errorf("SectionsForGrade(10): got %v, want %v", got, want)
	}
}

func TestResolve_FallsThroughOnNoData(t *testing.T) {
	r := classscope.NewResolver(zap.NewNop(),
		noData(),
		fixed(models.TeacherClass{Grade: 8, Section: "A"}),
	)
	got := r.Resolve(context.Background())

	want := []models.TeacherClass{{Grade: 8, Section: "A"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve: got %v, want %v", got, want)
	}
	if r.Err() != nil {
		t.Errorf("no-data fallthrough should not record an error, got %v", r.Err())
	}
}

func TestResolve_RecordsFailureButUsesFallback(t *testing.T) {
	boom := errors.New("profile fetch failed")
	r := classscope.NewResolver(zap.NewNop(),
		failing(boom),
		fixed(
			models.TeacherClass{Grade: 8, Section: "A"},
			models.TeacherClass{Grade: 8, Section: "A"},
			models.TeacherClass{Grade: 9, Section: "B"},
		),
	)
	got := r.Resolve(context.Background())

	want := []models.TeacherClass{{Grade: 8, Section: "A"}, {Grade: 9, Section: "B"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("duplicates not collapsed: got %v, want %v", got, want)
	}
	if !errors.Is(r.Err(), boom) {
		t.Errorf("expected recorded primary failure, got %v", r.Err())
	}
}

func TestResolve_AllSourcesFail(t *testing.T) {
	r := classscope.NewResolver(zap.NewNop(),
		failing(errors.New("profile down")),
		failing(errors.New("students down")),
	)
	got := r.Resolve(context.Background())

	if len(got) != 0 {
		t.Errorf("expected empty scope, got %v", got)
	}
	if r.Err() == nil {
		t.Error("expected a recorded error")
	}
}

func TestResolve_ExplicitEmptyListIsFinal(t *testing.T) {
	// An empty (non-nil) class list from the primary source is an answer,
	// not an invitation to fall back.
	r := classscope.NewResolver(zap.NewNop(),
		fixed(),
		fixed(models.TeacherClass{Grade: 12, Section: "Z"}),
	)
	got := r.Resolve(context.Background())

	if len(got) != 0 {
		t.Errorf("expected empty scope, got %v", got)
	}
}

func TestSectionsForGrade_UnassignedGrade(t *testing.T) {
	r := classscope.NewResolver(zap.NewNop(),
		fixed(models.TeacherClass{Grade: 10, Section: "A"}),
	)
	r.Resolve(context.Background())

	if got := r.SectionsForGrade(7); len(got) != 0 {
		t.Errorf("expected no sections for unassigned grade, got %v", got)
	}
}

func TestIsAssigned(t *testing.T) {
	r := classscope.NewResolver(zap.NewNop(),
		fixed(
			models.TeacherClass{Grade: 10, Section: "A"},
			models.TeacherClass{Grade: 9, Section: "C"},
		),
	)
	r.Resolve(context.Background())

	cases := []struct {
		grade   int
		section string
		want    bool
	}{
		{10, "A", true},
		{9, "C", true},
		{10, "C", false},
		{9, "A", false},
		{11, "A", false},
	}
	for _, tc := range cases {
		if got := r.IsAssigned(tc.grade, tc.section); got != tc.want {
			t.Errorf("IsAssigned(%d, %q): got %v, want %v", tc.grade, tc.section, got, tc.want)
		}
	}
}

func TestResolver_BeforeResolve(t *testing.T) {
	r := classscope.NewResolver(zap.NewNop())
	if got := r.AssignedGrades(); len(got) != 0 {
		t.Errorf("expected empty grades before Resolve, got %v", got)
	}
	if r.IsAssigned(1, "A") {
		t.Error("IsAssigned must be false before Resolve")
	}
}
