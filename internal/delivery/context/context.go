// Package context carries request-scoped values between the HTTP layer and the services.
//
// Values set on echo.Context are also mirrored onto the request's context.Context
// so usecases and repositories can read them without depending on echo.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header carrying the request ID.
const HeaderXRequestID = "X-Request-Id"

type ctxKey int

const (
	keyRequestID ctxKey = iota
	keyLogger
	keyIdentity
)

// echo.Context stores values by string.
func (k ctxKey) String() string {
	switch k {
	case keyRequestID:
		return "request_id"
	case keyLogger:
		return "logger"
	case keyIdentity:
		return "identity"
	default:
		return "unknown"
	}
}

// Identity is the caller proven by a valid access token.
type Identity struct {
	UserID int64
	Email  string
}

func valueOf[T any](ctx context.Context, key ctxKey) (T, bool) {
	v, ok := ctx.Value(key).(T)

	return v, ok
}

// GetRequestID returns the request ID of c. A request that bypassed the request ID
// middleware gets one generated and pinned, so every later read agrees.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(keyRequestID.String()).(string); ok && id != "" {
		return id
	}

	id := uuid.NewString()
	SetRequestID(c, id)

	return id
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(keyRequestID.String(), requestID)
}

// GetRequestIDFromContext returns the request ID, or "" outside an HTTP request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := valueOf[string](ctx, keyRequestID)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := valueOf[*slog.Logger](ctx, keyLogger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when there is none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// SetIdentity stores the authenticated caller on c and on its request context.
func SetIdentity(c echo.Context, identity Identity) {
	c.Set(keyIdentity.String(), identity)
	c.SetRequest(c.Request().WithContext(WithIdentity(c.Request().Context(), identity)))
}

// GetIdentity returns the authenticated caller, if the request passed the session guard.
func GetIdentity(c echo.Context) (Identity, bool) {
	identity, ok := c.Get(keyIdentity.String()).(Identity)

	return identity, ok
}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, keyIdentity, identity)
}

// IdentityFromContext returns the caller stored by WithIdentity.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	return valueOf[Identity](ctx, keyIdentity)
}
