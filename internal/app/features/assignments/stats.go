// internal/app/features/assignments/stats.go
package assignments

import (
	"context"
	"net/http"

	"github.com/dalemusser/classboard/internal/app/system/jsonapi"
	"github.com/dalemusser/classboard/internal/app/system/timeouts"
)

// Stats handles GET /api/assignments/stats. The counters always cover the
// full assignment set; filters never change them.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	screen := h.screen()
	if err := screen.Load(ctx); err != nil {
		h.writeUpstreamError(w, err, fetchFailedMsg)
		return
	}

	jsonapi.Write(w, http.StatusOK, screen.Stats())
}
