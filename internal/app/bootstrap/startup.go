// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/classboard/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after dependencies are
// built, but before the HTTP handler is. The school API is probed once so a
// bad upstream_base_url shows up in the logs immediately; an unreachable
// upstream is not fatal, since it may simply not be up yet.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	timeouts.Configure(timeouts.Config{Medium: appCfg.UpstreamTimeout})

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	if err := deps.Upstream.Ping(pingCtx); err != nil {
		logger.Warn("school API not reachable at startup",
			zap.String("upstream_base_url", appCfg.UpstreamBaseURL),
			zap.Error(err))
		return nil
	}

	logger.Info("school API reachable", zap.String("upstream_base_url", appCfg.UpstreamBaseURL))
	return nil
}
