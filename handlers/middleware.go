// mediahub/handlers/middleware.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"mediahub/config"

	"github.com/go-chi/chi/v5/middleware"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	RoleLevelKey ContextKey = "roleLevel"
	AppKey       ContextKey = "app"
)

// LevelHeader mirrors the shared header name; a missing or malformed header
// means a public viewer.
const LevelHeader = config.RoleLevelHeader

// RoleLevelMiddleware parses the role level header into the request context.
func RoleLevelMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		level := 0
		if v := r.Header.Get(LevelHeader); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				level = parsed
			}
		}
		ctx := context.WithValue(r.Context(), RoleLevelKey, level)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RoleLevel returns the caller's role level for the request, defaulting to 0.
func RoleLevel(r *http.Request) int {
	if level, ok := r.Context().Value(RoleLevelKey).(int); ok {
		return level
	}
	return 0
}

// NewStructuredLogger returns a chi middleware that logs each request through
// the application's slog logger.
func NewStructuredLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.Info("Request served",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration", time.Since(start).String(),
					"request_id", middleware.GetReqID(r.Context()),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
