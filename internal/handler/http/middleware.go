package http

import (
	"net/http"

	"github.com/QuantumCastro/L-Artisan/pkg/httputil"
	"github.com/QuantumCastro/L-Artisan/pkg/logger"
	"github.com/QuantumCastro/L-Artisan/pkg/middleware"
)

// RequireSession rejects requests that reach session routes without a
// session ID. It must run after middleware.Session.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if middleware.SessionIDFromContext(r.Context()) == "" {
			httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
				Error: &httputil.ErrorResponse{
					Code:      "INVALID_INPUT",
					Message:   middleware.SessionHeader + " header or " + middleware.SessionCookie + " cookie is required",
					RequestID: logger.CorrelationIDFromContext(r.Context()),
				},
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}
