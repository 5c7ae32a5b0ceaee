package mw

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"linkdeck/internal/auth"
	"linkdeck/internal/domain"
	"linkdeck/internal/logger"
)

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "linkdeck_session"

type ctxKey int

const sessionCtxKey ctxKey = iota

// RequireSession gates a route on session provider state: requests
// without a resolvable token get 401 and never reach the handler.
func RequireSession(provider *auth.Provider, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := SessionToken(r)
			session, err := provider.Resolve(r.Context(), token)
			if err != nil {
				log.Debug("rejected unauthenticated request",
					logger.String("path", r.URL.Path))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}

			ctx := context.WithValue(r.Context(), sessionCtxKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionToken extracts the session token from the Authorization bearer
// header or the session cookie, in that order.
func SessionToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return c.Value
	}
	return ""
}

// SessionFromContext returns the session placed by RequireSession.
func SessionFromContext(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(sessionCtxKey).(*domain.Session)
	return session, ok
}
