package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/kenf/property-management/internal/api/respond"
)

// Recovery turns a handler panic into a 500 with a generic message; the
// panic value and stack are logged, never returned to the client.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						"error", rec,
						"path", r.URL.Path,
						"stack", string(debug.Stack()),
					)
					respond.Error(w, http.StatusInternalServerError, "Something went wrong")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
