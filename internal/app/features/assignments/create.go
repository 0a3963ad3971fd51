// internal/app/features/assignments/create.go
package assignments

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/classboard/internal/app/system/htmlsanitize"
	"github.com/dalemusser/classboard/internal/app/system/jsonapi"
	"github.com/dalemusser/classboard/internal/app/system/timeouts"
	"github.com/dalemusser/classboard/internal/domain/homeworkdraft"
	"github.com/dalemusser/classboard/internal/domain/models"
	"go.uber.org/zap"
)

// Create handles POST /api/assignments.
//
// The draft is sanitized and validated before anything is sent upstream:
// rule violations come back as a 422 with field-keyed messages. Creating an
// assignment for a class outside the teacher's resolved scope is a 403,
// with the school API remaining the final authority.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var draft models.HomeworkDraft
	if err := jsonapi.Decode(r, &draft); err != nil {
		jsonapi.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	sanitizeDraft(&draft)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if !h.checkScope(ctx, w, draft) {
		return
	}

	created, err := h.screen().Create(ctx, draft)
	if err != nil {
		var verr *homeworkdraft.ValidationError
		if errors.As(err, &verr) {
			jsonapi.FieldErrors(w, verr.Fields)
			return
		}
		h.writeUpstreamError(w, err, createFailedMsg)
		return
	}

	jsonapi.Write(w, http.StatusCreated, created)
}

// sanitizeDraft strips markup from the title and reduces the description to
// safe HTML before validation, so a markup-only field fails the blank check.
func sanitizeDraft(draft *models.HomeworkDraft) {
	draft.Title = htmlsanitize.StripTags(draft.Title)
	draft.Description = htmlsanitize.Sanitize(draft.Description)
}

// checkScope rejects drafts for classes outside the teacher's resolved
// scope. When scope resolution comes back empty the check is skipped: the
// school API still enforces assignment server-side.
func (h *Handler) checkScope(ctx context.Context, w http.ResponseWriter, draft models.HomeworkDraft) bool {
	resolver := h.Upstream.ScopeResolver()
	classes := resolver.Resolve(ctx)
	if len(classes) == 0 {
		if err := resolver.Err(); err != nil {
			h.Log.Warn("scope resolution failed, skipping class check", zap.Error(err))
		}
		return true
	}
	if !resolver.IsAssigned(draft.Grade, draft.Section) {
		jsonapi.Error(w, http.StatusForbidden, notAssignedMsg)
		return false
	}
	return true
}
