// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence. The application layer handles
// these outcomes without depending on database-specific errors.
var (
	// ErrUserNotFound is returned when a user lookup matches nothing.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser is returned when creating a user whose username or
	// email is already taken.
	ErrDuplicateUser = errors.New("username or email already exists")
)

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user with the already-hashed credential and
	// returns the generated id. Duplicate username or email yields
	// ErrDuplicateUser.
	Create(ctx context.Context, username, email, passwordHash string) (uuid.UUID, error)

	// FindByUsername retrieves a single user by username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsernameWithCredential retrieves the login projection (id plus
	// password digest) for a username. Only the login flow uses this; the
	// general lookups never expose the hash.
	FindByUsernameWithCredential(ctx context.Context, username string) (*entity.Credential, error)
}
