package homeworkfilter_test

import (
	"testing"
	"time"

	"github.com/dalemusser/classboard/internal/domain/homeworkfilter"
	"github.com/dalemusser/classboard/internal/domain/models"
)

func sample() []models.Homework {
	return []models.Homework{
		{ID: "1", Grade: 10, Section: "A", Title: "Math HW", Description: "Fractions"},
		{ID: "2", Grade: 10, Section: "B", Title: "Sci Lab", Description: "math review"},
		{ID: "3", Grade: 9, Section: "A", Title: "Essay", Description: "Book report"},
	}
}

func ids(list []models.Homework) []string {
	out := make([]string, len(list))
	for i, hw := range list {
		out[i] = hw.ID
	}
	return out
}

func TestApply_SearchMatchesTitleOrDescription(t *testing.T) {
	got := homeworkfilter.Apply(sample(), homeworkfilter.Criteria{Search: "math"})
	if want := []string{"1", "2"}; !equal(ids(got), want) {
		t.Errorf("search 'math': got %v, want %v", ids(got), want)
	}
}

func TestApply_SearchIsCaseInsensitive(t *testing.T) {
	got := homeworkfilter.Apply(sample(), homeworkfilter.Criteria{Search: "MATH"})
	if len(got) != 2 {
		t.Errorf("case-insensitive search: got %v", ids(got))
	}
}

func TestApply_UnsetCriteriaMatchEverything(t *testing.T) {
	got := homeworkfilter.Apply(sample(), homeworkfilter.Criteria{})
	if len(got) != 3 {
		t.Errorf("empty criteria: got %v", ids(got))
	}
}

func TestApply_GradeAndSectionAreConjunctive(t *testing.T) {
	got := homeworkfilter.Apply(sample(), homeworkfilter.Criteria{Grade: 10, Section: "A"})
	if want := []string{"1"}; !equal(ids(got), want) {
		t.Errorf("grade 10 section A: got %v, want %v", ids(got), want)
	}
}

func TestApply_GradeOnly(t *testing.T) {
	got := homeworkfilter.Apply(sample(), homeworkfilter.Criteria{Grade: 10})
	if want := []string{"1", "2"}; !equal(ids(got), want) {
		t.Errorf("grade 10: got %v, want %v", ids(got), want)
	}
}

func TestApply_AllPredicatesTogether(t *testing.T) {
	got := homeworkfilter.Apply(sample(), homeworkfilter.Criteria{Search: "math", Grade: 10, Section: "B"})
	if want := []string{"2"}; !equal(ids(got), want) {
		t.Errorf("combined criteria: got %v, want %v", ids(got), want)
	}
}

func TestApply_PreservesInputOrder(t *testing.T) {
	got := homeworkfilter.Apply(sample(), homeworkfilter.Criteria{Section: "A"})
	if want := []string{"1", "3"}; !equal(ids(got), want) {
		t.Errorf("order: got %v, want %v", ids(got), want)
	}
}

func TestHasDateRange(t *testing.T) {
	d := models.NewDate(2024, time.June, 1)
	cases := []struct {
		name string
		c    homeworkfilter.Criteria
		want bool
	}{
		{"both set", homeworkfilter.Criteria{From: d, To: d}, true},
		{"from only", homeworkfilter.Criteria{From: d}, false},
		{"to only", homeworkfilter.Criteria{To: d}, false},
		{"neither", homeworkfilter.Criteria{}, false},
	}
	for _, tc := range cases {
		if got := tc.c.HasDateRange(); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestStatusOf(t *testing.T) {
	today := models.NewDate(2024, time.June, 1)
	cases := []struct {
		due  models.DateOnly
		want homeworkfilter.Status
	}{
		{models.NewDate(2024, time.May, 31), homeworkfilter.StatusOverdue},
		{models.NewDate(2024, time.June, 1), homeworkfilter.StatusDueToday},
		{models.NewDate(2024, time.June, 2), homeworkfilter.StatusActive},
	}
	for _, tc := range cases {
		if got := homeworkfilter.StatusOf(tc.due, today); got != tc.want {
			t.Errorf("StatusOf(%s): got %s, want %s", tc.due, got, tc.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	today := models.NewDate(2024, time.June, 1)
	list := []models.Homework{
		{DueDate: models.NewDate(2024, time.May, 20), Date: models.NewDate(2024, time.May, 13)},
		{DueDate: models.NewDate(2024, time.June, 1), Date: models.NewDate(2024, time.June, 1)},
		{DueDate: models.NewDate(2024, time.June, 10), Date: models.NewDate(2024, time.June, 1)},
	}
	got := homeworkfilter.Summarize(list, today)
	want := homeworkfilter.Stats{Total: 3, Today: 2, Active: 1, Overdue: 1}
	if got != want {
		t.Errorf("Summarize: got %+v, want %+v", got, want)
	}
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
