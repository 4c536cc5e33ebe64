package http

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5/middleware"
)

// Middleware defines the standard signature for an HTTP middleware.
type Middleware func(http.Handler) http.Handler

// Chain combines multiple middlewares into a single handler.
// The middlewares are applied in the order they are passed.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

type contextKey string

const (
	dryRunKey contextKey = "dryRun"
)

// paramsMiddleware reads the 'dry_run' and 'verbose' query parameters and
// attaches a request logger tagged with the chi request ID. 'verbose' lowers
// that logger to debug without touching the global level.
func paramsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		isDryRun := q.Get("dry_run") == "true"

		logger := log.With("requestID", middleware.GetReqID(r.Context()))
		if q.Get("verbose") == "true" {
			logger.SetLevel(log.DebugLevel)
		}
		logger.Debug("Handling request", "method", r.Method, "path", r.URL.Path, "dryRun", isDryRun)

		ctx := context.WithValue(r.Context(), dryRunKey, isDryRun)
		ctx = log.WithContext(ctx, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func isDryRunFromContext(r *http.Request) bool {
	dryRun, ok := r.Context().Value(dryRunKey).(bool)
	return ok && dryRun
}
