package impl

import (
	"context"
	"testing"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	"directory/internal/errors"
	mockRepo "directory/internal/mocks/repository"
	mockSvc "directory/internal/mocks/service"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	return authServiceFixtures{
		service: NewAuthService(AuthServiceParams{
			UserRepo:     userRepo,
			Hasher:       hasher,
			TokenService: tokenService,
			Logger:       newDiscardLogger(),
		}),
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ana@x.com", PasswordHash: "stored"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@x.com").Return(user, nil)
	fx.hasher.EXPECT().Check("secret1", "stored").Return(true)
	fx.tokenService.EXPECT().Issue(user.ID).Return("signed.jwt.token", nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ana@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, out.ID)
	assert.Equal(t, "signed.jwt.token", out.AccessToken)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), PasswordHash: "stored"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@x.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong-pass", "stored").Return(false)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ana@x.com", Password: "wrong-pass"})
	assert.Nil(t, out)
	assert.Equal(t, domainerrors.ErrInvalidCredentials, err)
}

func TestAuthService_Login_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@x.com").Return(nil, repository.ErrUserNotFound).Times(2)
	fx.hasher.EXPECT().Hash(timingPassword).Return("dummy-hash", nil).Once()
	fx.hasher.EXPECT().Check("secret1", "dummy-hash").Return(false).Times(2)

	for range 2 {
		out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@x.com", Password: "secret1"})
		assert.Nil(t, out)
		assert.Equal(t, domainerrors.ErrInvalidCredentials, err)
	}
}

func TestAuthService_Login_StorageFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, mock.Anything).Return(nil, errors.New("db down"))

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ana@x.com", Password: "secret1"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.Contains(t, err.Error(), "db down")
}

func TestAuthService_Login_TokenFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), PasswordHash: "stored"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@x.com").Return(user, nil)
	fx.hasher.EXPECT().Check("secret1", "stored").Return(true)
	fx.tokenService.EXPECT().Issue(user.ID).Return("", errors.New("signing failed"))

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ana@x.com", Password: "secret1"})
	assert.True(t, errors.Is(err, domainerrors.ErrTokenIssueFailed))
}
