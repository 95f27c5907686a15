// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "directory/internal/delivery/context"
	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/lifecycle"
	"directory/internal/domain/repository"
	"directory/internal/domain/service"
	"directory/internal/errors"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	publisher service.EventPublisher
	validator *registrationValidator
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Publisher service.EventPublisher `optional:"true"`
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		publisher: params.Publisher,
		validator: newRegistrationValidator(),
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete user registration process.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterResult, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email), slog.Int("telephones", len(input.Telephones)))

	telephones, violations := srv.validator.Validate(input)
	if violations != nil {
		srv.log(ctx).Debug("Registration input rejected", slog.Any("violations", violations.Fields))

		return &usecase.RegisterResult{Failure: violations}, nil
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Telephones:   telephones,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().CreateWithTelephones(ctx, user)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrEmailAlreadyExists) {
			srv.log(ctx).Info("Registration rejected, email already exists", slog.String("email", input.Email))

			return &usecase.RegisterResult{Failure: domainerrors.ErrEmailAlreadyExists}, nil
		}

		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return &usecase.RegisterResult{Failure: domainerrors.ErrUserCreationFailed.WithMessage(err.Error())}, nil
	}

	srv.publishRegistered(ctx, user)

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return &usecase.RegisterResult{
		Data: &usecase.RegisterOutput{
			ID:        user.ID,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		},
	}, nil
}

// publishRegistered announces a committed registration. A failed publish is
// logged only; the user already exists.
func (srv *userService) publishRegistered(ctx context.Context, user *entity.User) {
	if srv.publisher == nil {
		return
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	event := &service.UserRegisteredEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		UserID:     user.ID.String(),
		Email:      user.Email,
		Telephones: len(user.Telephones),
		CreatedAt:  user.CreatedAt,
	}
	if err := srv.publisher.PublishUserRegistered(pubCtx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish user registered event", slog.Any("userID", user.ID), slog.Any("error", err))
	}
}

// GetUser returns a user by id, or ErrUserNotFound.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// ListUsers returns every user, oldest first.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}
