package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/QuantumCastro/L-Artisan/pkg/logger"
)

const (
	// SessionHeader carries the storefront session ID on API calls.
	SessionHeader = "X-Session-ID"
	// SessionCookie carries the same ID for browser clients.
	SessionCookie = "storefront_session"
)

type sessionKey struct{}

// Session reads the session ID from SessionHeader, falling back to
// SessionCookie, and stores it in the request context. Requests without one
// pass through untouched.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := SessionIDFromRequest(r)
		if id != "" {
			ctx := context.WithValue(r.Context(), sessionKey{}, id)
			ctx = logger.WithSessionID(ctx, id)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// SessionIDFromRequest extracts the session ID without consulting the context.
func SessionIDFromRequest(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get(SessionHeader)); id != "" {
		return id
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return strings.TrimSpace(c.Value)
	}
	return ""
}

// SessionIDFromContext returns the ID stored by Session.
func SessionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionKey{}).(string); ok {
		return id
	}
	return ""
}
