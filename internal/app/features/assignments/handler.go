// internal/app/features/assignments/handler.go
package assignments

import (
	"net/http"

	"github.com/dalemusser/classboard/internal/app/system/jsonapi"
	"github.com/dalemusser/classboard/internal/app/upstream"
	"github.com/dalemusser/classboard/internal/domain/homeworkscreen"
	"go.uber.org/zap"
)

// Handler owns all assignment handlers. Each request builds its own screen
// over the upstream client so the caller's token rides the request context.
type Handler struct {
	Upstream *upstream.Client
	Log      *zap.Logger
}

// NewHandler constructs an assignments Handler.
func NewHandler(client *upstream.Client, logger *zap.Logger) *Handler {
	return &Handler{
		Upstream: client,
		Log:      logger,
	}
}

func (h *Handler) screen() *homeworkscreen.Screen {
	return homeworkscreen.New(h.Upstream, h.Log)
}

// writeUpstreamError maps a school-API failure onto our response: an API
// rejection passes through with its status and message, a transport failure
// becomes a 502 with the operation's fallback message.
func (h *Handler) writeUpstreamError(w http.ResponseWriter, err error, fallback string) {
	if apiErr, ok := upstream.AsAPIError(err); ok {
		jsonapi.Error(w, apiErr.StatusCode, apiErr.Message)
		return
	}
	h.Log.Error("upstream request failed", zap.Error(err))
	jsonapi.Error(w, http.StatusBadGateway, fallback)
}
