package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "directory/internal/delivery/context"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	"directory/internal/domain/service"
	"directory/internal/errors"
	"directory/internal/usecase"

	"go.uber.org/fx"
)

// timingPassword is hashed once and verified when the email is unknown.
const timingPassword = "directory-timing-equalizer"

type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger

	dummyOnce sync.Once
	dummyHash string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the credentials and issues an access token. An unknown email
// and a wrong password produce the same error.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.equalizeTiming(input.Password)
			srv.log(ctx).Info("Login rejected", slog.String("reason", "unknown email"))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.String("reason", "password mismatch"), slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		ID:          user.ID,
		AccessToken: token,
	}, nil
}

// equalizeTiming spends one password verification so an unknown email costs
// about the same as a wrong password.
func (srv *authService) equalizeTiming(password string) {
	srv.dummyOnce.Do(func() {
		hash, err := srv.hasher.Hash(timingPassword)
		if err != nil {
			srv.logger.Warn("Failed to prepare timing hash", slog.Any("error", err))

			return
		}
		srv.dummyHash = hash
	})

	if srv.dummyHash != "" {
		_ = srv.hasher.Check(password, srv.dummyHash)
	}
}
