// internal/app/features/session/routes.go
package session

import "github.com/go-chi/chi/v5"

// MountRoutes mounts the session routes on the given router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Put("/", h.Set)
	r.Delete("/", h.Clear)
}
