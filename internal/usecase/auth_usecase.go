package usecase

import (
	"context"

	"directory/internal/domain/entity"

	"github.com/google/uuid"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput returns the generated token after a successful login.
type LoginOutput struct {
	ID          uuid.UUID
	AccessToken string
}

// AuthUsecase exchanges credentials for an access token.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}

// IdentityLoader resolves a token subject to the current user record.
type IdentityLoader interface {
	LoadByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
