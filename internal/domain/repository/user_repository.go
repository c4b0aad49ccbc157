// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"todo/internal/domain/entity"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when the unique email constraint rejects an insert.
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// UserRepository defines the operations for user persistence.
type UserRepository interface {
	// Create persists a user whose password is already hashed and fills in its ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
