// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for ClassBoard.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: upstream_base_url, session_name, etc.
//   - Environment variables: CLASSBOARD_UPSTREAM_BASE_URL, CLASSBOARD_SESSION_NAME, etc.
//   - Command-line flags: --upstream_base_url, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "upstream_base_url", Default: "http://localhost:4000", Desc: "Base URL of the school platform API"},
	{Name: "upstream_timeout", Default: "10s", Desc: "Per-request timeout for school API calls (e.g., 10s, 1m)"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "classboard-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app and can be extended as the app grows.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, CLASSBOARD_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "CLASSBOARD", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		UpstreamBaseURL: appValues.String("upstream_base_url"),
		UpstreamTimeout: appValues.Duration("upstream_timeout", 10*time.Second),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// ClassBoard validates the school API URL up front so a misconfigured
// deployment fails at boot instead of on the first proxied request.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if !urlutil.IsValidAbsHTTPURL(appCfg.UpstreamBaseURL) {
		logger.Error("invalid upstream base URL", zap.String("upstream_base_url", appCfg.UpstreamBaseURL))
		return fmt.Errorf("upstream_base_url must be an absolute http(s) URL, got %q", appCfg.UpstreamBaseURL)
	}
	if appCfg.UpstreamTimeout <= 0 {
		return fmt.Errorf("upstream_timeout must be positive, got %s", appCfg.UpstreamTimeout)
	}
	return nil
}
