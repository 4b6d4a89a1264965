// internal/app/features/views/routes.go
package views

import "github.com/go-chi/chi/v5"

// Routes mounts the view counter endpoint.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/{slug}", h.ServeBump)
	return r
}
