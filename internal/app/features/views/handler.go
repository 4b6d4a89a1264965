// internal/app/features/views/handler.go
package views

import (
	"context"
	"net/http"
	"regexp"

	"github.com/dalemusser/tourdash/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// slugPattern limits slugs to the characters marketing pages actually use.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Counter records one view for a slug.
type Counter interface {
	Bump(ctx context.Context, slug string) error
}

// Handler records page views.
type Handler struct {
	Counter Counter
	Log     *zap.Logger
}

// NewHandler constructs a views Handler.
func NewHandler(counter Counter, logger *zap.Logger) *Handler {
	return &Handler{Counter: counter, Log: logger}
}

// ServeBump handles POST /api/views/{slug}.
//
// The increment is fire and forget. The response is 202 as soon as the
// slug is accepted; the counter write happens in the background and a
// failed write is only logged. Pages must never block on analytics.
func (h *Handler) ServeBump(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if !slugPattern.MatchString(slug) {
		http.Error(w, "invalid slug", http.StatusBadRequest)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeouts.Short())
		defer cancel()
		if err := h.Counter.Bump(ctx, slug); err != nil {
			h.Log.Warn("view counter bump failed",
				zap.String("slug", slug),
				zap.Error(err))
		}
	}()

	w.WriteHeader(http.StatusAccepted)
}
