package usecase

import (
	"context"

	"todo/internal/domain/entity"
)

// ListTodosInput carries the listing parameters as received from the caller.
// Zero values and the literal "undefined" mean "not provided".
type ListTodosInput struct {
	Limit     int
	Offset    int
	Search    string
	SortField string
	SortOrder string
}

// CreateTodoInput defines the data required to create a todo.
type CreateTodoInput struct {
	Title       string
	Description string
	UserID      int64
}

// UpdateTodoInput is a partial update; nil fields are left untouched.
type UpdateTodoInput struct {
	ID          int64
	Title       *string
	Description *string
}

// TodoUsecase defines the interface for todo operations.
type TodoUsecase interface {
	FindAll(ctx context.Context, input *ListTodosInput) (*entity.TodoPage, error)
	Create(ctx context.Context, input *CreateTodoInput) (*entity.Todo, error)
	// FindOne returns nil without error when the todo does not exist.
	FindOne(ctx context.Context, id int64) (*entity.Todo, error)
	Update(ctx context.Context, input *UpdateTodoInput) (int64, error)
	Remove(ctx context.Context, id int64) (int64, error)
}
