package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"todo/internal/delivery/api/middleware"
	"todo/internal/delivery/api/response"
	"todo/internal/delivery/api/validator"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

//nolint:gochecknoglobals
var createTodoMessages = validator.Messages{
	{Field: "title", Tag: "required"}:       domainerrors.ErrTitleRequired,
	{Field: "description", Tag: "required"}: domainerrors.ErrDescriptionRequired,
}

// TodoHandler holds dependencies for todo handlers.
type TodoHandler struct {
	uc     usecase.TodoUsecase
	logger *slog.Logger
}

// NewTodoHandler is the constructor for TodoHandler, injected by Fx.
func NewTodoHandler(uc usecase.TodoUsecase, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{
		uc:     uc,
		logger: logger,
	}
}

// FindAll lists todos. Paging values that are missing or not numbers use the defaults.
func (h *TodoHandler) FindAll(c echo.Context) error {
	input := &usecase.ListTodosInput{
		Limit:     queryInt(c, "limit"),
		Offset:    queryInt(c, "offset"),
		Search:    c.QueryParam("search"),
		SortField: c.QueryParam("sortField"),
		SortOrder: c.QueryParam("sortOrder"),
	}

	page, err := h.uc.FindAll(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toTodoListResponse(page))
}

// Create stores a todo owned by the authenticated caller.
func (h *TodoHandler) Create(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req CreateTodoRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidInput.WrapMessage("invalid todo input")
	}

	if err := c.Validate(&req); err != nil {
		return validator.FirstError(err, createTodoMessages)
	}

	todo, err := h.uc.Create(c.Request().Context(), &usecase.CreateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		UserID:      identity.UserID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, toTodoResponse(todo))
}

// FindOne returns a todo, or a JSON null when it does not exist.
func (h *TodoHandler) FindOne(c echo.Context) error {
	id, err := todoID(c)
	if err != nil {
		return err
	}

	todo, err := h.uc.FindOne(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	if todo == nil {
		return response.JSON(c, http.StatusOK, nil)
	}

	return response.JSON(c, http.StatusOK, toTodoResponse(todo))
}

// Update applies a partial update.
func (h *TodoHandler) Update(c echo.Context) error {
	id, err := todoID(c)
	if err != nil {
		return err
	}

	var req UpdateTodoRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidInput.WrapMessage("invalid todo input")
	}

	affected, err := h.uc.Update(c.Request().Context(), &usecase.UpdateTodoInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, &AffectedResponse{AffectedCount: affected})
}

// Remove deletes a todo.
func (h *TodoHandler) Remove(c echo.Context) error {
	id, err := todoID(c)
	if err != nil {
		return err
	}

	affected, err := h.uc.Remove(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, &AffectedResponse{AffectedCount: affected})
}

func todoID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrInvalidTodoID.WrapMessage(err.Error())
	}

	return id, nil
}

// queryInt parses an integer query parameter; anything unparsable reads as 0.
func queryInt(c echo.Context, name string) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}

	return value
}
