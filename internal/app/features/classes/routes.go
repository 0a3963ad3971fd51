// internal/app/features/classes/routes.go
package classes

import "github.com/go-chi/chi/v5"

// MountRoutes mounts all class scope routes on the given router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/grades", h.Grades)
	r.Get("/sections", h.Sections)
}
