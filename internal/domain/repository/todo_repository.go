package repository

import (
	"context"
	"errors"

	"todo/internal/domain/entity"
)

// ErrTodoNotFound is returned when no todo has the requested ID.
var ErrTodoNotFound = errors.New("todo not found")

// TodoRepository defines the operations for todo persistence.
type TodoRepository interface {
	// Create inserts a todo and fills in its ID and timestamps.
	Create(ctx context.Context, todo *entity.Todo) error

	// List returns one page of todos and the number of rows matching the filter.
	List(ctx context.Context, filter entity.TodoFilter) (*entity.TodoPage, error)

	// FindByID retrieves a todo, or ErrTodoNotFound.
	FindByID(ctx context.Context, id int64) (*entity.Todo, error)

	// Update applies the non-nil fields of patch and returns the number of affected rows.
	Update(ctx context.Context, id int64, patch entity.TodoPatch) (int64, error)

	// Delete removes a todo and returns ErrTodoNotFound when nothing was deleted.
	Delete(ctx context.Context, id int64) error
}
