package handler

import (
	"context"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/devlinkhq/devlink-api/internal/auth"
)

// authTokenHeader is the fixed request header slot carrying the identity
// token, as an opaque string with no scheme prefix.
const authTokenHeader = "x-auth-token"

type contextKey struct{}

var identityKey contextKey

// IdentityFromContext returns the verified identity attached by RequireAuth.
func IdentityFromContext(ctx context.Context) (auth.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(auth.Identity)
	return identity, ok
}

// RequireAuth verifies the identity token on each request and attaches the
// resulting identity to the request context. Verification happens exactly once
// per request, before any handler logic; rejection terminates the request.
func RequireAuth(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(authTokenHeader)
			if token == "" {
				respondError(w, http.StatusUnauthorized, "no token, authorization denied")
				return
			}

			identity, err := tokens.Verify(token)
			if err != nil {
				respondError(w, http.StatusUnauthorized, "token is not valid")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestLogger logs one structured event per request.
func RequestLogger(logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Str("request_id", chimiddleware.GetReqID(r.Context())).
				Msg("request completed")
		})
	}
}
