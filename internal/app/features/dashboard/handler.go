// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/tourdash/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler serves the dashboard snapshot API.
type Handler struct {
	Agg *Aggregator
	Log *zap.Logger
}

// NewHandler constructs a dashboard Handler around agg.
func NewHandler(agg *Aggregator, logger *zap.Logger) *Handler {
	return &Handler{Agg: agg, Log: logger}
}

// Serve handles GET /api/dashboard.
//
// Every request recomputes the snapshot from the source collections; there
// is no cached or persisted metrics state. Build never returns an error
// (source failures become the error-status snapshot), so this handler
// always answers 200 with a well-formed body.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	snap := h.Agg.Build(ctx)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		h.Log.Error("dashboard: encode snapshot failed", zap.Error(err))
	}
}
