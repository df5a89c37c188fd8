// Package middleware holds the HTTP middleware chain: auth, CORS,
// metrics and request logging.
package middleware

import (
	"net/http"
	"strings"

	"github.com/fittrack-app/fittrack/internal/app/auth"
	"github.com/fittrack-app/fittrack/internal/logging"
)

// skipRule marks one route as reachable without a token.
type skipRule struct {
	method string
	path   string
	prefix bool
}

// Registration, login, health and metrics stay open; everything else
// requires a bearer token.
var skipAuth = []skipRule{
	{method: http.MethodPost, path: "/api/User"},
	{method: http.MethodPost, path: "/api/User/login"},
	{method: http.MethodGet, path: "/healthz"},
	{method: http.MethodGet, path: "/metrics"},
	{method: http.MethodOptions, path: "/", prefix: true},
}

func skippable(r *http.Request) bool {
	for _, rule := range skipAuth {
		if rule.method != r.Method {
			continue
		}
		if rule.prefix && strings.HasPrefix(r.URL.Path, rule.path) {
			return true
		}
		if r.URL.Path == rule.path {
			return true
		}
	}
	return false
}

// Auth validates the bearer token on protected routes and stores the
// authenticated user ID on the request context.
func Auth(tokens *auth.Manager, log *logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skippable(r) {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				unauthorized(w, "missing bearer token")
				return
			}

			claims, err := tokens.Validate(token)
			if err != nil {
				log.WithContext(r.Context()).WithError(err).Debug("token rejected")
				unauthorized(w, "invalid or expired token")
				return
			}

			ctx := logging.WithUserID(r.Context(), claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"` + msg + `"}`))
}
