// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	assignmentsfeature "github.com/dalemusser/classboard/internal/app/features/assignments"
	classesfeature "github.com/dalemusser/classboard/internal/app/features/classes"
	healthfeature "github.com/dalemusser/classboard/internal/app/features/health"
	sessionfeature "github.com/dalemusser/classboard/internal/app/features/session"
	"github.com/dalemusser/classboard/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, dependency setup, and any Startup
// hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: the upstream school API client bundled in Deps
//   - logger: the fully configured zap.Logger for this app
//
// ClassBoard applies the session middleware globally, then mounts the JSON
// feature routers the assignment screen calls: session, assignments, and
// classes, plus the health endpoint for load balancers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	r := chi.NewRouter()

	// Global auth middleware: copies the session's bearer token into the
	// request context so the upstream client can attach it.
	r.Use(sessionMgr.LoadToken)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Upstream, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Session token storage
	sessionHandler := sessionfeature.NewHandler(sessionMgr, logger)
	r.Route("/api/session", sessionHandler.MountRoutes)

	// Assignment management
	assignmentsHandler := assignmentsfeature.NewHandler(deps.Upstream, logger)
	r.Route("/api/assignments", assignmentsHandler.MountRoutes)

	// Class scope (grade/section options for the form)
	classesHandler := classesfeature.NewHandler(deps.Upstream, logger)
	r.Route("/api/classes", classesHandler.MountRoutes)

	return r, nil
}
