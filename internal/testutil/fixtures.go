package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dalemusser/classboard/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// SampleHomework returns a small fixed assignment set spanning grades and
// sections, for filter and handler tests.
func SampleHomework() []models.Homework {
	return []models.Homework{
		{
			ID:          "hw-1",
			Grade:       10,
			Section:     "A",
			Title:       "Algebra worksheet",
			Description: "Problems 1-20",
			AssignDate:  models.NewDate(2024, time.June, 1),
			DueDate:     models.NewDate(2024, time.June, 8),
			Date:        models.NewDate(2024, time.June, 1),
		},
		{
			ID:          "hw-2",
			Grade:       10,
			Section:     "B",
			Title:       "Lab report",
			Description: "Photosynthesis experiment",
			AssignDate:  models.NewDate(2024, time.June, 3),
			DueDate:     models.NewDate(2024, time.June, 10),
			Date:        models.NewDate(2024, time.June, 3),
		},
		{
			ID:          "hw-3",
			Grade:       9,
			Section:     "A",
			Title:       "Book report",
			Description: "Chapters 1-5",
			AssignDate:  models.NewDate(2024, time.May, 20),
			DueDate:     models.NewDate(2024, time.May, 27),
			Date:        models.NewDate(2024, time.May, 20),
		},
	}
}

// SchoolAPI is an in-memory stand-in for the school platform API. It serves
// the teacher profile, the student roster, and a mutable homework store over
// the same paths and bodies the real API uses.
type SchoolAPI struct {
	Server *httptest.Server

	mu       sync.Mutex
	homework []models.Homework
	classes  []models.TeacherClass // nil omits the classes field entirely
	students []models.Student
	nextID   int
}

// NewSchoolAPI starts a stub school API seeded with SampleHomework. The
// server is shut down when the test finishes.
func NewSchoolAPI(t *testing.T) *SchoolAPI {
	t.Helper()

	api := &SchoolAPI{
		homework: SampleHomework(),
		nextID:   100,
	}
	r := chi.NewRouter()
	r.Get("/api/teachers/profile", api.profile)
	r.Get("/api/teachers/students", api.listStudents)
	r.Get("/api/teachers/Homework", api.list)
	r.Post("/api/teachers/Homework", api.create)
	r.Post("/api/teachers/Homework/range", api.listRange)
	r.Patch("/api/teachers/Homework", api.update)
	r.Delete("/api/teachers/Homework", api.deleteHomework)

	api.Server = httptest.NewServer(r)
	t.Cleanup(api.Server.Close)
	return api
}

// URL returns the stub's base URL.
func (a *SchoolAPI) URL() string {
	return a.Server.URL
}

// SetClasses sets the explicit class list on the teacher profile. Passing
// nil removes the field, which makes scope resolution fall back to the
// student roster.
func (a *SchoolAPI) SetClasses(classes []models.TeacherClass) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.classes = classes
}

// SetStudents sets the student roster.
func (a *SchoolAPI) SetStudents(students []models.Student) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.students = students
}

// SetHomework replaces the homework store.
func (a *SchoolAPI) SetHomework(list []models.Homework) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.homework = list
}

// Homework returns a copy of the current homework store.
func (a *SchoolAPI) Homework() []models.Homework {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]models.Homework, len(a.homework))
	copy(out, a.homework)
	return out
}

func (a *SchoolAPI) profile(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	teacher := map[string]any{"name": "Ms. Rivera"}
	if a.classes != nil {
		teacher["classes"] = a.classes
	}
	json.NewEncoder(w).Encode(map[string]any{"teacher": teacher})
}

func (a *SchoolAPI) listStudents(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	students := a.students
	if students == nil {
		students = []models.Student{}
	}
	json.NewEncoder(w).Encode(students)
}

func (a *SchoolAPI) list(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	json.NewEncoder(w).Encode(a.homework)
}

func (a *SchoolAPI) listRange(w http.ResponseWriter, r *http.Request) {
	var body struct {
		FromDate string `json:"fromDate"`
		ToDate   string `json:"toDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid range")
		return
	}
	from, err := models.ParseDate(body.FromDate)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid fromDate")
		return
	}
	to, err := models.ParseDate(body.ToDate)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid toDate")
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	out := []models.Homework{}
	for _, hw := range a.homework {
		if !hw.AssignDate.Before(from.Time) && !hw.AssignDate.After(to.Time) {
			out = append(out, hw)
		}
	}
	json.NewEncoder(w).Encode(out)
}

func (a *SchoolAPI) create(w http.ResponseWriter, r *http.Request) {
	var draft models.HomeworkDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid homework")
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.nextID++
	hw := models.Homework{
		ID:          fmt.Sprintf("hw-%d", a.nextID),
		Grade:       draft.Grade,
		Section:     draft.Section,
		Title:       draft.Title,
		Description: draft.Description,
		AssignDate:  draft.AssignDate,
		DueDate:     draft.DueDate,
		Date:        draft.Date,
	}
	a.homework = append(a.homework, hw)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(hw)
}

func (a *SchoolAPI) update(w http.ResponseWriter, r *http.Request) {
	var body struct {
		models.HomeworkDraft
		HomeworkID string `json:"homeworkID"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid homework")
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	for i, hw := range a.homework {
		if hw.ID != body.HomeworkID {
			continue
		}
		hw.Grade = body.Grade
		hw.Section = body.Section
		hw.Title = body.Title
		hw.Description = body.Description
		hw.AssignDate = body.AssignDate
		hw.DueDate = body.DueDate
		a.homework[i] = hw
		json.NewEncoder(w).Encode(hw)
		return
	}
	writeMessage(w, http.StatusNotFound, "Homework not found")
}

func (a *SchoolAPI) deleteHomework(w http.ResponseWriter, r *http.Request) {
	var body struct {
		HomeworkID string `json:"homeworkID"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid homework")
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	for i, hw := range a.homework {
		if hw.ID == body.HomeworkID {
			a.homework = append(a.homework[:i], a.homework[i+1:]...)
			json.NewEncoder(w).Encode(map[string]string{"message": "Homework deleted"})
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "Homework not found")
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
