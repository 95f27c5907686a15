package impl

import (
	"context"
	"testing"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	"directory/internal/errors"
	mockRepo "directory/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityLoader_LoadByID(t *testing.T) {
	ctx := context.Background()
	known := &entity.User{ID: uuid.New(), Name: "Ana"}
	missing := uuid.New()
	broken := uuid.New()

	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindByID(ctx, known.ID).Return(known, nil)
	userRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrUserNotFound)
	userRepo.EXPECT().FindByID(ctx, broken).Return(nil, errors.New("connection reset"))

	loader := NewIdentityLoader(userRepo)

	got, err := loader.LoadByID(ctx, known.ID)
	require.NoError(t, err)
	assert.Same(t, known, got)

	_, err = loader.LoadByID(ctx, missing)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))

	_, err = loader.LoadByID(ctx, broken)
	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
