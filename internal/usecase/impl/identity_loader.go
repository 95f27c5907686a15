package impl

import (
	"context"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	"directory/internal/errors"
	"directory/internal/usecase"

	"github.com/google/uuid"
)

type identityLoader struct {
	userRepo repository.UserRepository
}

// NewIdentityLoader is the constructor for identityLoader.
func NewIdentityLoader(userRepo repository.UserRepository) usecase.IdentityLoader {
	return &identityLoader{userRepo: userRepo}
}

// LoadByID reads the user fresh on every call so deleted users stop authenticating.
func (l *identityLoader) LoadByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := l.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load identity")
	}

	return user, nil
}
