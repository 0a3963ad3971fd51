package upstream_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/classboard/internal/app/system/auth"
	"github.com/dalemusser/classboard/internal/app/upstream"
	"github.com/dalemusser/classboard/internal/domain/classscope"
	"github.com/dalemusser/classboard/internal/domain/models"
	"go.uber.org/zap"
)

func newClient(t *testing.T, handler http.Handler) (*upstream.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := upstream.New(upstream.Config{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
		Logger:  zap.NewNop(),
	})
	if err != nil {
		t.Fatalf("upstream.New failed: %v", err)
	}
	return c, srv
}

func TestNew_RequiresBaseURL(t *testing.T) {
	if _, err := upstream.New(upstream.Config{}); err == nil {
		t.Fatal("expected error for missing base URL")
	}
}

func TestListHomework_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	var gotRequestID string
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode([]models.Homework{})
	}))

	ctx := auth.ContextWithToken(context.Background(), "tok-123")
	if _, err := c.ListHomework(ctx); err != nil {
		t.Fatalf("ListHomework failed: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization: got %q", gotAuth)
	}
	if gotRequestID == "" {
		t.Error("expected an X-Request-ID header")
	}
}

func TestListHomework_EmptyTokenSendsEmptyHeader(t *testing.T) {
	var gotAuth string
	var present bool
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, present = r.Header["Authorization"]
		json.NewEncoder(w).Encode([]models.Homework{})
	}))

	if _, err := c.ListHomework(context.Background()); err != nil {
		t.Fatalf("ListHomework failed: %v", err)
	}
	if !present {
		t.Error("Authorization header must be present even without a token")
	}
	if gotAuth != "" {
		t.Errorf("Authorization: got %q, want empty value", gotAuth)
	}
}

func TestListHomeworkRange_SendsDateBody(t *testing.T) {
	var got map[string]string
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/teachers/Homework/range" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &got)
		json.NewEncoder(w).Encode([]models.Homework{})
	}))

	from := models.NewDate(2024, time.January, 1)
	to := models.NewDate(2024, time.January, 31)
	if _, err := c.ListHomeworkRange(context.Background(), from, to); err != nil {
		t.Fatalf("ListHomeworkRange failed: %v", err)
	}
	if got["fromDate"] != "2024-01-01" || got["toDate"] != "2024-01-31" {
		t.Errorf("range body: got %v", got)
	}
}

func TestCreateHomework_ReturnsServerEntity(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var draft models.HomeworkDraft
		json.NewDecoder(r.Body).Decode(&draft)
		json.NewEncoder(w).Encode(models.Homework{
			ID:          "hw-1",
			Grade:       draft.Grade,
			Section:     draft.Section,
			Title:       draft.Title,
			Description: draft.Description,
			AssignDate:  draft.AssignDate,
			DueDate:     draft.DueDate,
			Date:        draft.Date,
		})
	}))

	draft := models.HomeworkDraft{
		Grade:       10,
		Section:     "A",
		Title:       "Algebra worksheet",
		Description: "Problems 1-20",
		AssignDate:  models.NewDate(2024, time.June, 1),
		DueDate:     models.NewDate(2024, time.June, 8),
		Date:        models.NewDate(2024, time.June, 1),
	}
	created, err := c.CreateHomework(context.Background(), draft)
	if err != nil {
		t.Fatalf("CreateHomework failed: %v", err)
	}
	if created.ID != "hw-1" || created.Title != "Algebra worksheet" {
		t.Errorf("created entity: got %+v", created)
	}
}

func TestUpdateHomework_SendsID(t *testing.T) {
	var got map[string]any
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("unexpected method %s", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &got)
		json.NewEncoder(w).Encode(models.Homework{ID: "hw-9"})
	}))

	if _, err := c.UpdateHomework(context.Background(), "hw-9", models.HomeworkDraft{Title: "t"}); err != nil {
		t.Fatalf("UpdateHomework failed: %v", err)
	}
	if got["homeworkID"] != "hw-9" {
		t.Errorf("body homeworkID: got %v", got["homeworkID"])
	}
}

func TestDeleteHomework_NotFound(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Homework not found"})
	}))

	err := c.DeleteHomework(context.Background(), "gone")
	if !upstream.IsNotFound(err) {
		t.Fatalf("expected not-found rejection, got %v", err)
	}
	if upstream.Message(err, "fallback") != "Homework not found" {
		t.Errorf("expected server message, got %q", upstream.Message(err, "fallback"))
	}
}

func TestServerMessage_FallbackWhenBodyUnusable(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>oops</html>"))
	}))

	_, err := c.ListHomework(context.Background())
	var apiErr *upstream.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Message != "Failed to fetch homework" {
		t.Errorf("fallback message: got %q", apiErr.Message)
	}
}

func TestTransportFailure_IsRequestError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on

	c, err := upstream.New(upstream.Config{BaseURL: srv.URL, Timeout: time.Second})
	if err != nil {
		t.Fatalf("upstream.New failed: %v", err)
	}

	_, err = c.ListHomework(context.Background())
	var reqErr *upstream.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if upstream.IsRejected(err) {
		t.Error("transport failure must not classify as an API rejection")
	}
}

func TestProfileSource_NoClassesFallsThrough(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Profile without a classes field.
		w.Write([]byte(`{"teacher":{"name":"Ms. Rivera"}}`))
	}))

	_, err := upstream.NewProfileSource(c).Classes(context.Background())
	if !errors.Is(err, classscope.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestProfileSource_ExplicitClasses(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"teacher":{"classes":[{"grade":10,"section":"A"},{"grade":9,"section":"C"}]}}`))
	}))

	classes, err := upstream.NewProfileSource(c).Classes(context.Background())
	if err != nil {
		t.Fatalf("Classes failed: %v", err)
	}
	want := []models.TeacherClass{{Grade: 10, Section: "A"}, {Grade: 9, Section: "C"}}
	if len(classes) != 2 || classes[0] != want[0] || classes[1] != want[1] {
		t.Errorf("classes: got %v, want %v", classes, want)
	}
}

func TestStudentSource_DerivesPlacements(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/teachers/students" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`[{"grade":8,"section":"A"},{"grade":8,"section":"A"},{"grade":9,"section":"B"}]`))
	}))

	classes, err := upstream.NewStudentSource(c).Classes(context.Background())
	if err != nil {
		t.Fatalf("Classes failed: %v", err)
	}
	// Duplicates are collapsed by the resolver, not the source.
	if len(classes) != 3 {
		t.Fatalf("expected raw placements, got %v", classes)
	}
}

func TestScopeResolver_FallbackPath(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/teachers/profile":
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"message": "profile unavailable"})
		case "/api/teachers/students":
			w.Write([]byte(`[{"grade":8,"section":"A"},{"grade":8,"section":"A"},{"grade":9,"section":"B"}]`))
		default:
			http.NotFound(w, r)
		}
	}))

	r := c.ScopeResolver()
	got := r.Resolve(context.Background())

	want := []models.TeacherClass{{Grade: 8, Section: "A"}, {Grade: 9, Section: "B"}}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("resolved scope: got %v, want %v", got, want)
	}
	if r.Err() == nil {
		t.Error("expected the profile failure to be recorded")
	}
}

func TestPing(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	if err := c.Ping(context.Background()); err != nil {
		t.Errorf("auth rejection still counts as reachable, got %v", err)
	}
}
