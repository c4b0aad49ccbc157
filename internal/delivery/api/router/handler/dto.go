package handler

import (
	"time"

	"todo/internal/domain/entity"
)

// RegisterRequest is the body of POST /auth/register.
// Field order decides which validation message is reported first.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email_format"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateTodoRequest is the body of POST /todos. Any userId in the body is ignored.
type CreateTodoRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// UpdateTodoRequest is the body of PUT /todos/:id; absent fields are left untouched.
type UpdateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// TodoResponse is the public view of a todo.
type TodoResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UserID      int64     `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TodoListResponse is one page of todos and the total match count.
type TodoListResponse struct {
	Rows  []*TodoResponse `json:"rows"`
	Count int64           `json:"count"`
}

// AffectedResponse reports how many todos a mutation touched.
type AffectedResponse struct {
	AffectedCount int64 `json:"affectedCount"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func toTodoResponse(todo *entity.Todo) *TodoResponse {
	if todo == nil {
		return nil
	}

	return &TodoResponse{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		UserID:      todo.UserID,
		CreatedAt:   todo.CreatedAt,
		UpdatedAt:   todo.UpdatedAt,
	}
}

func toTodoListResponse(page *entity.TodoPage) *TodoListResponse {
	rows := make([]*TodoResponse, 0, len(page.Rows))
	for _, todo := range page.Rows {
		rows = append(rows, toTodoResponse(todo))
	}

	return &TodoListResponse{Rows: rows, Count: page.Count}
}
