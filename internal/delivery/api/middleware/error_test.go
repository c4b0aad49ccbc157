package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"todo/internal/delivery/api/response"
	deliverycontext "todo/internal/delivery/context"
	domainerrors "todo/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, response.ErrorResponse, string) {
	t.Helper()

	var logs bytes.Buffer
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(&logs, nil)))
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/todos/1", nil), rec)
	deliverycontext.SetRequestID(c, "req-9")

	m.HandleHTTPError(err, c)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body, logs.String()
}

func TestHandleHTTPError_AppError(t *testing.T) {
	rec, body, logs := handleError(t, domainerrors.ErrTodoNotFound.WrapMessage("failed to remove todo"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "TODO_NOT_FOUND", body.Error.Code)
	assert.Equal(t, "Todo not found", body.Error.Message)
	assert.Equal(t, "req-9", body.Meta.RequestID)
	assert.Empty(t, logs)
}

func TestHandleHTTPError_DatabaseErrorIsGeneric(t *testing.T) {
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New(`relation "todos" does not exist`), "failed to create todo")

	rec, body, logs := handleError(t, errors.Wrap(dbErr, "failed to create todo"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", body.Error.Message)
	assert.Nil(t, body.Error.Details)
	assert.NotContains(t, rec.Body.String(), "relation")
	assert.Contains(t, logs, "relation")
}

func TestHandleHTTPError_EchoError(t *testing.T) {
	rec, body, _ := handleError(t, echo.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	assert.Equal(t, "Not Found", body.Error.Message)
}

func TestHandleHTTPError_Unknown(t *testing.T) {
	rec, body, logs := handleError(t, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.Contains(t, logs, "Unhandled error")
}
