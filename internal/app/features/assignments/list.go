// internal/app/features/assignments/list.go
package assignments

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/classboard/internal/app/system/jsonapi"
	"github.com/dalemusser/classboard/internal/app/system/timeouts"
	"github.com/dalemusser/classboard/internal/domain/homeworkfilter"
	"github.com/dalemusser/classboard/internal/domain/models"
)

// List handles GET /api/assignments.
//
// Query parameters: q (search), grade, section, from, to. All optional and
// conjunctive. When both from and to are present the result comes from the
// school API's range query and the other filters do not apply; a half-open
// range is rejected.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	criteria, ok := h.parseCriteria(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	screen := h.screen()
	if !criteria.HasDateRange() {
		if err := screen.Load(ctx); err != nil {
			h.writeUpstreamError(w, err, fetchFailedMsg)
			return
		}
	}
	if err := screen.SetCriteria(ctx, criteria); err != nil {
		h.writeUpstreamError(w, err, rangeFailedMsg)
		return
	}

	visible := screen.Visible()
	jsonapi.Write(w, http.StatusOK, listResponse{
		Assignments: visible,
		Total:       len(visible),
	})
}

// parseCriteria reads the filter query parameters, writing a 400 and
// returning ok=false on a malformed value.
func (h *Handler) parseCriteria(w http.ResponseWriter, r *http.Request) (homeworkfilter.Criteria, bool) {
	q := r.URL.Query()
	criteria := homeworkfilter.Criteria{
		Search:  strings.TrimSpace(q.Get("q")),
		Section: strings.TrimSpace(q.Get("section")),
	}

	if raw := q.Get("grade"); raw != "" {
		grade, err := strconv.Atoi(raw)
		if err != nil || grade <= 0 {
			jsonapi.Error(w, http.StatusBadRequest, "Invalid grade")
			return homeworkfilter.Criteria{}, false
		}
		criteria.Grade = grade
	}

	fromRaw, toRaw := q.Get("from"), q.Get("to")
	if (fromRaw == "") != (toRaw == "") {
		jsonapi.Error(w, http.StatusBadRequest, "Both from and to are required for a date range")
		return homeworkfilter.Criteria{}, false
	}
	if fromRaw != "" {
		from, err := models.ParseDate(fromRaw)
		if err != nil {
			jsonapi.Error(w, http.StatusBadRequest, "Invalid from date")
			return homeworkfilter.Criteria{}, false
		}
		to, err := models.ParseDate(toRaw)
		if err != nil {
			jsonapi.Error(w, http.StatusBadRequest, "Invalid to date")
			return homeworkfilter.Criteria{}, false
		}
		criteria.From, criteria.To = from, to
	}

	return criteria, true
}
