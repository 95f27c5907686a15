// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"directory/internal/delivery/api/middleware"
	"directory/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	AuthHandler    *handler.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	authHandler    *handler.AuthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		authHandler:    params.AuthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// createUser and auth are reachable without a token
	apiV1.POST("/users", r.userHandler.RegisterUser)
	apiV1.POST("/auth", r.authHandler.Login)

	protected := apiV1.Group("", r.authMiddleware.Authenticate)
	{
		protected.GET("/me", r.userHandler.Me)
		protected.GET("/users", r.userHandler.ListUsers)
		protected.GET("/users/:id", r.userHandler.GetUser)
	}
}
