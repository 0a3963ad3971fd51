// internal/app/features/session/handler.go
package session

import (
	"net/http"
	"strings"

	"github.com/dalemusser/classboard/internal/app/system/auth"
	"github.com/dalemusser/classboard/internal/app/system/jsonapi"
	"go.uber.org/zap"
)

// Handler stores and clears the upstream bearer token in the cookie
// session. The token is issued by the school platform's own login flow;
// this only holds on to it for the assignment screen's API calls.
type Handler struct {
	Sessions *auth.SessionManager
	Log      *zap.Logger
}

// NewHandler constructs a session Handler.
func NewHandler(sessions *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		Sessions: sessions,
		Log:      logger,
	}
}

// Set handles PUT /api/session with a `{"token": "..."}` body.
func (h *Handler) Set(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Token string `json:"token"`
	}
	if err := jsonapi.Decode(r, &body); err != nil {
		jsonapi.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	token := strings.TrimSpace(body.Token)
	if token == "" {
		jsonapi.Error(w, http.StatusBadRequest, "Token is required")
		return
	}

	if err := h.Sessions.SetToken(w, r, token); err != nil {
		h.Log.Error("failed to store session token", zap.Error(err))
		jsonapi.Error(w, http.StatusInternalServerError, "Failed to store session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Clear handles DELETE /api/session.
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.ClearToken(w, r); err != nil {
		h.Log.Error("failed to clear session token", zap.Error(err))
		jsonapi.Error(w, http.StatusInternalServerError, "Failed to clear session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
