// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//
// AppConfig is where everything specific to this application lives: the
// school API endpoint the service proxies, and the cookie session that
// carries the teacher's bearer token between requests.
type AppConfig struct {
	// School API configuration
	UpstreamBaseURL string        // Base URL of the school platform API (e.g., https://api.school.example)
	UpstreamTimeout time.Duration // Per-request timeout for school API calls

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: classboard-session)
	SessionDomain string // Cookie domain (blank means current host)
}
