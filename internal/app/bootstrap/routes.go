// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	contactfeature "github.com/dalemusser/tourdash/internal/app/features/contact"
	dashboardfeature "github.com/dalemusser/tourdash/internal/app/features/dashboard"
	healthfeature "github.com/dalemusser/tourdash/internal/app/features/health"
	viewsfeature "github.com/dalemusser/tourdash/internal/app/features/views"
	contactstore "github.com/dalemusser/tourdash/internal/app/store/contact"
	docsstore "github.com/dalemusser/tourdash/internal/app/store/docs"
	viewsstore "github.com/dalemusser/tourdash/internal/app/store/views"
	"github.com/dalemusser/tourdash/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. TourDash mounts the health check plus
// the three API surfaces: the dashboard snapshot, the contact form intake,
// and the page view counter.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Dashboard snapshot, read from the six source collections
	agg := dashboardfeature.NewAggregator(docsstore.New(deps.MongoDatabase), logger)
	dashboardHandler := dashboardfeature.NewHandler(agg, logger)
	r.Mount("/api/dashboard", dashboardfeature.Routes(dashboardHandler))

	// Contact form intake, rate limited per client IP
	limiter := ratelimit.New(appCfg.ContactRateLimit, appCfg.ContactRateWindow)
	contactHandler := contactfeature.NewHandler(contactstore.New(deps.MongoDatabase), limiter, logger)
	r.Mount("/api/contact", contactfeature.Routes(contactHandler))

	// Page view counter
	viewsHandler := viewsfeature.NewHandler(viewsstore.New(deps.MongoDatabase), logger)
	r.Mount("/api/views", viewsfeature.Routes(viewsHandler))

	return r, nil
}
