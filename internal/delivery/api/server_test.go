package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"todo/config"
	apimiddleware "todo/internal/delivery/api/middleware"
	"todo/internal/delivery/api/response"
	"todo/internal/delivery/api/router"
	"todo/internal/delivery/api/router/handler"
	deliverycontext "todo/internal/delivery/context"
	"todo/internal/domain/entity"
	"todo/internal/domain/service"
	mockSvc "todo/internal/mocks/service"
	mockUC "todo/internal/mocks/usecase"
	"todo/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	echo     *echo.Echo
	authUC   *mockUC.MockAuthUsecase
	todoUC   *mockUC.MockTodoUsecase
	tokenSvc *mockSvc.MockTokenService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ts := &testServer{
		authUC:   mockUC.NewMockAuthUsecase(t),
		todoUC:   mockUC.NewMockTodoUsecase(t),
		tokenSvc: mockSvc.NewMockTokenService(t),
	}
	ts.echo = newEcho(cfg, logger, router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(ts.authUC, logger),
		TodoHandler:    handler.NewTodoHandler(ts.todoUC, logger),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(ts.tokenSvc, logger),
	})

	return ts
}

func (ts *testServer) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body
}

func TestServer_Health(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/health", "", map[string]string{deliverycontext.HeaderXRequestID: "req-1"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, "req-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_RegisterValidationEnvelope(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/auth/register", `{"email":"nope","password":""}`, map[string]string{deliverycontext.HeaderXRequestID: "req-2"})

	body := decodeError(t, rec)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Provide valid email", body.Error.Message)
	assert.Equal(t, "req-2", body.Meta.RequestID)
}

func TestServer_GuardRejectsMissingToken(t *testing.T) {
	ts := newTestServer(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/todos"},
		{http.MethodPut, "/todos/1"},
		{http.MethodDelete, "/todos/1"},
		{http.MethodPost, "/auth/logout"},
	} {
		rec := ts.do(route.method, route.path, "", nil)

		body := decodeError(t, rec)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, route.path)
		assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
		assert.Equal(t, "Unauthorized", body.Error.Message)
	}
}

func TestServer_CreateWithToken(t *testing.T) {
	ts := newTestServer(t)

	ts.tokenSvc.EXPECT().ValidateToken("good.token").Return(&service.Claims{
		Email:            "jane@example.com",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "5"},
	}, nil)
	ts.todoUC.EXPECT().
		Create(mock.Anything, &usecase.CreateTodoInput{Title: "t", Description: "d", UserID: 5}).
		Return(&entity.Todo{ID: 1, Title: "t", Description: "d", UserID: 5}, nil)

	rec := ts.do(http.MethodPost, "/todos", `{"title":"t","description":"d"}`, map[string]string{
		echo.HeaderAuthorization: "Bearer good.token",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"userId":5`)
}

func TestServer_PublicReads(t *testing.T) {
	ts := newTestServer(t)

	ts.todoUC.EXPECT().FindAll(mock.Anything, mock.Anything).Return(&entity.TodoPage{}, nil)
	ts.todoUC.EXPECT().FindOne(mock.Anything, int64(7)).Return(nil, nil)

	rec := ts.do(http.MethodGet, "/todos?limit=5", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(http.MethodGet, "/todos/7", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "null", rec.Body.String())

	rec = ts.do(http.MethodGet, "/todos/seven", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid todo id", decodeError(t, rec).Error.Message)
}

func TestServer_InternalErrorsAreGeneric(t *testing.T) {
	ts := newTestServer(t)

	ts.todoUC.EXPECT().FindAll(mock.Anything, mock.Anything).Return(nil, errors.New(`column "bogus" does not exist`))

	rec := ts.do(http.MethodGet, "/todos?sortField=bogus", "", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "bogus")
}

func TestServer_UnknownRouteAndBodyLimit(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", decodeError(t, rec).Error.Code)

	huge := `{"email":"` + strings.Repeat("a", 2048) + `@example.com","password":"x"}`
	rec = ts.do(http.MethodPost, "/auth/register", huge, nil)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
