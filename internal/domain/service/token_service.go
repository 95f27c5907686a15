package service

import (
	"directory/internal/errors"

	"github.com/google/uuid"
)

// ErrInvalidToken is wrapped by every token rejection.
var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and validates signed, time-bounded bearer tokens.
type TokenService interface {
	// Issue signs a token asserting subjectID.
	Issue(subjectID uuid.UUID) (string, error)

	// Validate verifies signature and expiry and returns the subject id.
	Validate(token string) (uuid.UUID, error)
}
