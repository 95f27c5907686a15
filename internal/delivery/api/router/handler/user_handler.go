// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"directory/config"
	"directory/internal/delivery/api/response"
	deliverycontext "directory/internal/delivery/context"
	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Config *config.Config
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	debug  bool
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		debug:  params.Config.Env.Debug,
		logger: params.Logger,
	}
}

// TelephoneRequest is one telephone in a registration request.
type TelephoneRequest struct {
	AreaCode string `json:"area_code"`
	Number   string `json:"number"`
}

// RegisterUserRequest is the body of POST /api/v1/users. Field rules are
// applied by the use case so their order and messages stay in one place.
type RegisterUserRequest struct {
	Name       string             `json:"name"`
	Email      string             `json:"email"`
	Password   string             `json:"password"`
	Telephones []TelephoneRequest `json:"telephones"`
}

// RegisterUserResponse is returned after a successful registration.
type RegisterUserResponse struct {
	ID         uuid.UUID `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// TelephoneResponse is the public view of a telephone.
type TelephoneResponse struct {
	ID       uuid.UUID `json:"id"`
	AreaCode string    `json:"area_code"`
	Number   string    `json:"number"`
}

// UserResponse is the public view of a user. It never includes credentials.
type UserResponse struct {
	ID         uuid.UUID           `json:"id"`
	Name       string              `json:"name"`
	Email      string              `json:"email"`
	Telephones []TelephoneResponse `json:"telephones"`
	CreatedAt  time.Time           `json:"created_at"`
	ModifiedAt time.Time           `json:"modified_at"`
}

// RegisterUser handles createUser. It does not require authentication.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	input := &usecase.RegisterUserInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Telephones: make([]usecase.TelephoneInput, 0, len(req.Telephones)),
	}
	for _, tel := range req.Telephones {
		input.Telephones = append(input.Telephones, usecase.TelephoneInput{AreaCode: tel.AreaCode, Number: tel.Number})
	}

	result, err := h.userUC.Register(c.Request().Context(), input)
	if err != nil {
		return err
	}

	if !result.Succeeded() {
		return h.renderRegisterFailure(c, result.Failure)
	}

	return response.Success(c, http.StatusCreated, RegisterUserResponse{
		ID:         result.Data.ID,
		CreatedAt:  result.Data.CreatedAt,
		ModifiedAt: result.Data.UpdatedAt,
	})
}

// renderRegisterFailure hides the underlying persistence message outside debug mode.
func (h *UserHandler) renderRegisterFailure(c echo.Context, failure domainerrors.AppError) error {
	if failure == nil {
		return domainerrors.ErrInternalError
	}

	if failure.ErrorCode() == domainerrors.ErrUserCreationFailed.ErrorCode() {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Error("User creation failed", slog.String("cause", failure.Message()))
		if !h.debug {
			failure = domainerrors.ErrUserCreationFailed
		}
	}

	return response.AppError(c, failure)
}

// Me returns the authenticated user.
func (h *UserHandler) Me(c echo.Context) error {
	user, ok := deliverycontext.GetUser(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// GetUser returns a user by id. An unknown id is a 404, unlike the guard's 401.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// A malformed id can never match a user.
		return response.HandleAppError(c, domainerrors.ErrUserNotFound)
	}

	user, err := h.userUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// ListUsers returns every user.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}

	return response.Success(c, http.StatusOK, out)
}

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

func toUserResponse(user *entity.User) UserResponse {
	telephones := make([]TelephoneResponse, 0, len(user.Telephones))
	for _, tel := range user.Telephones {
		telephones = append(telephones, TelephoneResponse{
			ID:       tel.ID,
			AreaCode: tel.AreaCode,
			Number:   tel.Number,
		})
	}

	return UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Telephones: telephones,
		CreatedAt:  user.CreatedAt,
		ModifiedAt: user.UpdatedAt,
	}
}
