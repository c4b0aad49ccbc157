package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()

	generated := GetRequestID(c)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, GetRequestID(c))

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestLoggerFallback(t *testing.T) {
	fallback := slog.Default()
	scoped := slog.Default().With("request_id", "req-1")

	assert.Nil(t, GetLogger(context.Background()))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestIdentity(t *testing.T) {
	c := newEchoContext()

	_, ok := GetIdentity(c)
	assert.False(t, ok)

	SetIdentity(c, Identity{UserID: 3, Email: "jane@example.com"})

	identity, ok := GetIdentity(c)
	assert.True(t, ok)
	assert.Equal(t, int64(3), identity.UserID)
	assert.Equal(t, "jane@example.com", identity.Email)

	fromCtx, ok := IdentityFromContext(c.Request().Context())
	assert.True(t, ok)
	assert.Equal(t, identity, fromCtx)

	_, ok = IdentityFromContext(context.Background())
	assert.False(t, ok)
}
