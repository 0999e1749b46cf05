// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"ubishop/internal/domain/entity"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when another user already holds the normalized email.
	ErrEmailTaken = errors.New("email already registered")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by id.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByIDs retrieves the users with the given ids. Missing ids are skipped.
	FindByIDs(ctx context.Context, ids []int64) ([]*entity.User, error)

	// FindByEmail matches the normalized (trimmed, lower-case) email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns every user ordered by id.
	List(ctx context.Context) ([]*entity.User, error)

	// Create inserts the user and assigns its id. The insert fails with
	// ErrEmailTaken when the normalized email already exists, atomically.
	Create(ctx context.Context, user *entity.User) error

	// Update writes the mutable fields of an existing user.
	Update(ctx context.Context, user *entity.User) error
}
