// internal/app/bootstrap/deps.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/classboard/internal/app/upstream"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Deps holds back-end dependencies for the app. ClassBoard has no database
// of its own: the school API is the system of record, reached through the
// upstream client.
type Deps struct {
	Upstream *upstream.Client
}

// ConnectDB builds the school API client. No connection is opened here;
// reachability is probed in Startup and reported by /health.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (Deps, error) {
	client, err := upstream.New(upstream.Config{
		BaseURL: appCfg.UpstreamBaseURL,
		Timeout: appCfg.UpstreamTimeout,
		Logger:  logger,
	})
	if err != nil {
		return Deps{}, err
	}
	return Deps{Upstream: client}, nil
}

// EnsureSchema is a no-op: the school API owns all persistent state.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	return nil
}
