package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/abidbilal/deskservice/internal/logger"
	"github.com/abidbilal/deskservice/internal/server"
)

const (
	// UserIDKey is the Echo context key for the authenticated user's
	// identifier. Set by the auth middleware.
	UserIDKey = "user_id"

	// UsernameKey is the Echo context key for the authenticated username.
	UsernameKey = "username"

	// LoggerKey is the key the request-scoped logger is stored under, in
	// both Echo context and the request's Go context.
	LoggerKey = "logger"
)

// ContextEnhancer builds a request-scoped logger carrying request_id,
// method, path, client IP, trace metadata when a transaction exists, and
// the user identity when auth has run. The logger is stored in Echo context
// and the request's Go context.
type ContextEnhancer struct {
	server *server.Server
}

// NewContextEnhancer creates a ContextEnhancer from the app container.
func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext returns the Echo middleware. It should run after RequestID
// and the tracing middleware, but before the auth-gated handlers.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = logger.WithTraceContext(contextLogger, txn)
			}

			if userID := GetUserID(c); userID != 0 {
				contextLogger = contextLogger.With().Int64("user_id", userID).Logger()
			}
			if username := GetUsername(c); username != "" {
				contextLogger = contextLogger.With().Str("username", username).Logger()
			}

			c.Set(LoggerKey, &contextLogger)

			ctx := context.WithValue(c.Request().Context(), LoggerKey, &contextLogger)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetUserID reads the authenticated user's identifier from Echo context, or
// zero when the request is unauthenticated.
func GetUserID(c echo.Context) int64 {
	if userID, ok := c.Get(UserIDKey).(int64); ok {
		return userID
	}
	return 0
}

// GetUsername reads the authenticated username from Echo context.
func GetUsername(c echo.Context) string {
	if username, ok := c.Get(UsernameKey).(string); ok {
		return username
	}
	return ""
}

// GetLogger retrieves the request-scoped logger from Echo context. When the
// enhancer has not run it returns a no-op logger rather than nil.
func GetLogger(c echo.Context) *zerolog.Logger {
	if log, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return log
	}

	log := zerolog.Nop()
	return &log
}
