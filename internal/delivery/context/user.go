package context

import (
	"context"
	"log/slog"

	"directory/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyCurrentUser is the key for the authenticated user of a request.
const KeyCurrentUser ContextKey = "current_user"

// WithUser returns a new context carrying the authenticated user. A request
// logger already in ctx is replaced by one tagged with user_id.
func WithUser(ctx context.Context, user *entity.User) context.Context {
	if logger := GetLogger(ctx); logger != nil && user != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", user.ID.String())))
	}

	return context.WithValue(ctx, KeyCurrentUser, user)
}

// UserFromContext returns the user bound by the auth middleware, if any.
func UserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(KeyCurrentUser).(*entity.User)

	return user, ok && user != nil
}

// SetUser binds the user to both the echo context and the request context.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyCurrentUser), user)
	c.SetRequest(c.Request().WithContext(WithUser(c.Request().Context(), user)))
}

// GetUser returns the user bound to the echo context, if any.
func GetUser(c echo.Context) (*entity.User, bool) {
	if user, ok := c.Get(string(KeyCurrentUser)).(*entity.User); ok && user != nil {
		return user, true
	}

	return UserFromContext(c.Request().Context())
}
