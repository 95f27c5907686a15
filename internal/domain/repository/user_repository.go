// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"directory/internal/domain/entity"
	"directory/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the storage operations for users and their telephones.
type UserRepository interface {
	// FindByID retrieves a user with telephones by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user, including the password hash, by exact email match.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// CreateWithTelephones inserts the user and all of its telephones.
	// ID and timestamps are written back into the given entities.
	// A duplicate email yields domainerrors.ErrEmailAlreadyExists.
	CreateWithTelephones(ctx context.Context, user *entity.User) error

	// List returns every user with telephones, oldest first.
	List(ctx context.Context) ([]*entity.User, error)
}
