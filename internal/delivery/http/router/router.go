// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sphere/internal/delivery/http/middleware"
	"sphere/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	RoleHandler    *handler.RoleHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	roleHandler    *handler.RoleHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		roleHandler:    params.RoleHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/validate-token", r.authHandler.ValidateToken, r.authMiddleware.Authenticate)
	}

	// User administration requires authentication and the Admin role.
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	userGroup.Use(r.authMiddleware.RequireRole("Admin"))
	{
		userGroup.POST("", r.userHandler.Create)
		userGroup.GET("", r.userHandler.Search)
		userGroup.GET("/:id", r.userHandler.Get)
		userGroup.PUT("/:id", r.userHandler.Update)
	}

	// Role lookups require authentication only.
	roleGroup := e.Group("/roles")
	roleGroup.Use(r.authMiddleware.Authenticate)
	{
		roleGroup.GET("", r.roleHandler.List)
		roleGroup.GET("/:id", r.roleHandler.Get)
	}
}
