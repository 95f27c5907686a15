package middleware

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "directory/internal/delivery/context"
	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/service"
	"directory/internal/errors"
	"directory/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerScheme = "Bearer"

// Authorize resolves the Authorization header to the current user. Every
// credential problem, including a subject that no longer exists, is reported
// as ErrUnauthenticated. Only storage faults surface as other errors.
func Authorize(ctx context.Context, header string, tokens service.TokenService, loader usecase.IdentityLoader) (*entity.User, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return nil, domainerrors.ErrUnauthenticated
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	subjectID, err := tokens.Validate(token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, err.Error())
	}

	user, err := loader.LoadByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "token subject no longer exists")
		}

		return nil, err
	}

	return user, nil
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService   service.TokenService
	IdentityLoader usecase.IdentityLoader
	Logger         *slog.Logger
}

// AuthMiddleware guards routes that need an authenticated user.
type AuthMiddleware struct {
	tokens service.TokenService
	loader usecase.IdentityLoader
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: params.TokenService,
		loader: params.IdentityLoader,
		logger: params.Logger,
	}
}

// Authenticate validates the bearer token and binds the user to the request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		user, err := Authorize(ctx, c.Request().Header.Get(echo.HeaderAuthorization), m.tokens, m.loader)
		if err != nil {
			if errors.Is(err, domainerrors.ErrUnauthenticated) {
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Request not authenticated", slog.Any("reason", err))
			}

			return err
		}

		deliverycontext.SetUser(c, user)

		return next(c)
	}
}
