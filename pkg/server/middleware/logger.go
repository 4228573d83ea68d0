package middleware

import (
	"net/http"

	"github.com/rs/zerolog"
)

// Logger binds a request-scoped logger into the context so handlers can
// log through zerolog.Ctx with the request fields already attached.
func Logger(logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			reqLogger := logger.With().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("query", req.URL.RawQuery).
				Str("remote_ip", req.RemoteAddr).
				Str("user_agent", req.UserAgent()).
				Logger()

			ctx := reqLogger.WithContext(req.Context())
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}
