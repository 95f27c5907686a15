// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// TelephoneInput is one telephone as submitted. Digits are extracted during validation.
type TelephoneInput struct {
	AreaCode string
	Number   string
}

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name       string
	Email      string
	Password   string
	Telephones []TelephoneInput
}

// --- Output DTOs ---

// RegisterOutput identifies the created user. It never carries credentials.
type RegisterOutput struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RegisterResult is the outcome of a registration attempt.
// Exactly one of Data and Failure is set.
type RegisterResult struct {
	Data    *RegisterOutput
	Failure domainerrors.AppError
}

// Succeeded reports whether the user was created.
func (r *RegisterResult) Succeeded() bool {
	return r != nil && r.Data != nil
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register validates and persists a user with telephones. Expected
	// failures are reported in the result; the error is for infrastructure faults.
	Register(ctx context.Context, input *RegisterUserInput) (*RegisterResult, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
}
