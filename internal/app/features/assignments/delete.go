// internal/app/features/assignments/delete.go
package assignments

import (
	"context"
	"net/http"

	"github.com/dalemusser/classboard/internal/app/system/jsonapi"
	"github.com/dalemusser/classboard/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// Delete handles DELETE /api/assignments/{id}. A 204 means the school API
// confirmed the removal.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		jsonapi.Error(w, http.StatusBadRequest, "Missing assignment id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.screen().Delete(ctx, id); err != nil {
		h.writeUpstreamError(w, err, deleteFailedMsg)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
