package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// Recover returns middleware that converts handler panics into a generic
// 500 response. The panic detail is always logged; it is echoed to the
// client only in the development environment.
func Recover(env string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					slog.Error("handler panic",
						"panic", rec,
						"method", r.Method,
						"path", r.URL.Path,
						"stack", string(debug.Stack()),
					)

					msg := "internal server error"
					if env == "development" {
						msg = fmt.Sprintf("internal server error: %v", rec)
					}
					writeJSONError(w, http.StatusInternalServerError, msg)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
