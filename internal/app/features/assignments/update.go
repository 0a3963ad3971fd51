// internal/app/features/assignments/update.go
package assignments

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/classboard/internal/app/system/jsonapi"
	"github.com/dalemusser/classboard/internal/app/system/timeouts"
	"github.com/dalemusser/classboard/internal/domain/homeworkdraft"
	"github.com/dalemusser/classboard/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Update handles PATCH /api/assignments/{id}.
//
// Same sanitization, validation, and scope rules as Create. An unknown
// assignment is a 404 with the school API's message.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		jsonapi.Error(w, http.StatusBadRequest, "Missing assignment id")
		return
	}

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

	updated, err := h.screen().Update(ctx, id, draft)
	if err != nil {
		var verr *homeworkdraft.ValidationError
		if errors.As(err, &verr) {
			jsonapi.FieldErrors(w, verr.Fields)
			return
		}
		h.writeUpstreamError(w, err, updateFailedMsg)
		return
	}

	jsonapi.Write(w, http.StatusOK, updated)
}
