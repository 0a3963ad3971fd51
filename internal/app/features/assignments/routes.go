// internal/app/features/assignments/routes.go
package assignments

import "github.com/go-chi/chi/v5"

// MountRoutes mounts all assignment routes on the given router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/stats", h.Stats)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}
