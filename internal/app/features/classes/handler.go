// internal/app/features/classes/handler.go
package classes

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dalemusser/classboard/internal/app/system/jsonapi"
	"github.com/dalemusser/classboard/internal/app/system/timeouts"
	"github.com/dalemusser/classboard/internal/app/upstream"
	"github.com/dalemusser/classboard/internal/domain/classscope"
	"go.uber.org/zap"
)

// Handler serves the teacher's class scope: the classes the assignment form
// may target, and the grade/section option lists derived from them.
//
// Scope resolution failures degrade to empty lists rather than errors; the
// form simply offers no options until the upstream recovers.
type Handler struct {
	Upstream *upstream.Client
	Log      *zap.Logger
}

// NewHandler constructs a classes Handler.
func NewHandler(client *upstream.Client, logger *zap.Logger) *Handler {
	return &Handler{
		Upstream: client,
		Log:      logger,
	}
}

// resolve runs scope resolution for this request, logging a degraded
// outcome instead of failing it.
func (h *Handler) resolve(ctx context.Context) *classscope.Resolver {
	resolver := h.Upstream.ScopeResolver()
	if classes := resolver.Resolve(ctx); len(classes) == 0 {
		if err := resolver.Err(); err != nil {
			h.Log.Warn("class scope resolution degraded", zap.Error(err))
		}
	}
	return resolver
}

// classEntry is one class in the List response.
type classEntry struct {
	Grade   int    `json:"grade"`
	Section string `json:"section"`
	Label   string `json:"label"`
}

// List handles GET /api/classes.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	classes := h.resolve(ctx).Classes()
	out := make([]classEntry, 0, len(classes))
	for _, c := range classes {
		out = append(out, classEntry{Grade: c.Grade, Section: c.Section, Label: c.Label()})
	}
	jsonapi.Write(w, http.StatusOK, out)
}

// Grades handles GET /api/classes/grades: the distinct assigned grades in
// ascending order.
func (h *Handler) Grades(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	grades := h.resolve(ctx).AssignedGrades()
	jsonapi.Write(w, http.StatusOK, map[string][]int{"grades": grades})
}

// Sections handles GET /api/classes/sections?grade=N: the distinct sections
// for one grade, ascending. An unassigned grade yields an empty list.
func (h *Handler) Sections(w http.ResponseWriter, r *http.Request) {
	grade, err := strconv.Atoi(r.URL.Query().Get("grade"))
	if err != nil || grade <= 0 {
		jsonapi.Error(w, http.StatusBadRequest, "Invalid grade")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	sections := h.resolve(ctx).SectionsForGrade(grade)
	jsonapi.Write(w, http.StatusOK, map[string][]string{"sections": sections})
}
