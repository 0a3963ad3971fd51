// internal/app/system/auth/auth.go

// Package auth manages the teacher's cookie session and the upstream bearer
// credential stored in it. The SessionManager is constructed once in
// bootstrap and passed explicitly to every feature that needs it; there is
// no package-level store, so tests can substitute their own manager (or skip
// it entirely and inject a token straight into the request context).
package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const tokenKey = "upstream_token"

type ctxKey string

const tokenCtxKey ctxKey = "upstreamToken"

// SessionManager wraps the cookie session store that holds the teacher's
// bearer token for the school API. Token issuance and refresh happen
// elsewhere; this only stores and retrieves an already-issued credential.
type SessionManager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewSessionManager builds a SessionManager with the given signing key and
// cookie settings. The key must be at least 32 characters; in dev, an empty
// key falls back to a random per-process key so the app still boots.
func NewSessionManager(sessionKey, name, domain string, secure bool, logger *zap.Logger) (*SessionManager, error) {
	key := []byte(sessionKey)
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
		logger.Warn("session key not configured; using a random per-process key")
	}
	if len(key) < 32 {
		return nil, fmt.Errorf("session key too short; provide at least 32 characters")
	}
	if name == "" {
		return nil, fmt.Errorf("session name is empty")
	}

	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		Domain:   domain,
		MaxAge:   0, // session cookie
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &SessionManager{store: store, name: name, log: logger}, nil
}

// SetToken stores the upstream bearer token in the session.
func (sm *SessionManager) SetToken(w http.ResponseWriter, r *http.Request, token string) error {
	sess, _ := sm.store.Get(r, sm.name)
	sess.Values[tokenKey] = token
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// ClearToken removes the upstream bearer token from the session.
func (sm *SessionManager) ClearToken(w http.ResponseWriter, r *http.Request) error {
	sess, _ := sm.store.Get(r, sm.name)
	delete(sess.Values, tokenKey)
	sess.Options.MaxAge = -1
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// LoadToken is middleware that copies the session's bearer token into the
// request context for the upstream client. A missing token is not an error:
// the request continues with an empty token and the school API stays the
// authority on whether the call is allowed.
func (sm *SessionManager) LoadToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := sm.store.Get(r, sm.name)
		token, _ := sess.Values[tokenKey].(string)
		next.ServeHTTP(w, r.WithContext(ContextWithToken(r.Context(), token)))
	})
}

// ContextWithToken returns a context carrying the upstream bearer token.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenCtxKey, token)
}

// TokenFromContext returns the upstream bearer token, or "" when none is set.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenCtxKey).(string)
	return token
}

// WithTestToken attaches a token to the request context for handler tests,
// bypassing the session middleware.
func WithTestToken(r *http.Request, token string) *http.Request {
	return r.WithContext(ContextWithToken(r.Context(), token))
}
