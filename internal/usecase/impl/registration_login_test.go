package impl

import (
	"context"
	"testing"
	"time"

	"directory/config"
	"directory/internal/domain/entity"
	"directory/internal/domain/repository"
	"directory/internal/infra/auth"
	mockRepo "directory/internal/mocks/repository"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestRegisterThenLogin runs registration, login, token validation and the
// identity lookup behind /me with the real Argon2 hasher and JWT service.
// Only storage is mocked; it keeps whatever CreateWithTelephones received.
func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()

	hasher := auth.NewArgon2HasherWithParams(auth.Argon2Params{
		Memory:      64,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	})
	cfg := &config.Config{}
	cfg.SecretKey.Access = "registration_login_secret_key_for_tests"
	cfg.Auth.TokenTTL = time.Hour
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	var stored *entity.User

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().UserRepo().Return(txRepo)
			txRepo.EXPECT().
				CreateWithTelephones(mock.Anything, mock.AnythingOfType("*entity.User")).
				RunAndReturn(func(_ context.Context, user *entity.User) error {
					now := time.Now().UTC()
					user.ID = uuid.New()
					user.CreatedAt, user.UpdatedAt = now, now
					copied := *user
					stored = &copied

					return nil
				})

			return fn(factory)
		}).Once()

	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindByEmail(mock.Anything, "ana@x.com").
		RunAndReturn(func(context.Context, string) (*entity.User, error) { return stored, nil })
	userRepo.EXPECT().FindByID(mock.Anything, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*entity.User, error) {
			if stored == nil || stored.ID != id {
				return nil, repository.ErrUserNotFound
			}

			return stored, nil
		})

	users := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    hasher,
		Logger:    newDiscardLogger(),
	})
	sessions := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokens,
		Logger:       newDiscardLogger(),
	})
	loader := NewIdentityLoader(userRepo)

	result, err := users.Register(ctx, &usecase.RegisterUserInput{
		Name:     "Ana",
		Email:    "ana@x.com",
		Password: "abcde",
		Telephones: []usecase.TelephoneInput{
			{AreaCode: "11", Number: "98765432100"},
		},
	})
	require.NoError(t, err)
	require.True(t, result.Succeeded())
	require.NotNil(t, stored)
	assert.NotEqual(t, "abcde", stored.PasswordHash)
	assert.Equal(t, stored.ID, result.Data.ID)

	_, err = sessions.Login(ctx, &usecase.LoginInput{Email: "ana@x.com", Password: "abcdf"})
	require.Error(t, err)

	login, err := sessions.Login(ctx, &usecase.LoginInput{Email: "ana@x.com", Password: "abcde"})
	require.NoError(t, err)
	assert.Equal(t, result.Data.ID, login.ID)

	subjectID, err := tokens.Validate(login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, result.Data.ID, subjectID)

	me, err := loader.LoadByID(ctx, subjectID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", me.Name)
	assert.Equal(t, "ana@x.com", me.Email)
	require.Len(t, me.Telephones, 1)
	assert.Equal(t, "11", me.Telephones[0].AreaCode)
	assert.Equal(t, "98765432100", me.Telephones[0].Number)
}
