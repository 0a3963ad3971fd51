// internal/app/features/health/handler.go
package health

import (
	"context"
	"net/http"

	"github.com/dalemusser/classboard/internal/app/system/jsonapi"
	"github.com/dalemusser/classboard/internal/app/system/timeouts"
	"github.com/dalemusser/classboard/internal/app/upstream"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Upstream *upstream.Client
	Log      *zap.Logger
}

// NewHandler constructs a health Handler with the upstream client and logger.
func NewHandler(client *upstream.Client, logger *zap.Logger) *Handler {
	return &Handler{
		Upstream: client,
		Log:      logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Upstream string `json:"upstream"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "upstream":"reachable" }
//
// When the school API cannot be reached: 503 and
//
//	{ "status":"degraded", "upstream":"unreachable", "message":"School API unavailable", "error":"…"}
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	if err := h.Upstream.Ping(ctx); err != nil {
		h.Log.Error("health-check: upstream ping failed", zap.Error(err))
		jsonapi.Write(w, http.StatusServiceUnavailable, healthResponse{
			Status:   "degraded",
			Upstream: "unreachable",
			Message:  "School API unavailable",
			Error:    err.Error(),
		})
		return
	}

	jsonapi.Write(w, http.StatusOK, healthResponse{
		Status:   "ok",
		Upstream: "reachable",
	})
}
