// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"todo/internal/delivery/api/middleware"
	"todo/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	TodoHandler    *handler.TodoHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	todoHandler    *handler.TodoHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		todoHandler:    params.TodoHandler,
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
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	}

	// Reads are public, writes require a session
	todosGroup := e.Group("/todos")
	{
		todosGroup.GET("", r.todoHandler.FindAll)
		todosGroup.GET("/:id", r.todoHandler.FindOne)
		todosGroup.POST("", r.todoHandler.Create, r.authMiddleware.Authenticate)
		todosGroup.PUT("/:id", r.todoHandler.Update, r.authMiddleware.Authenticate)
		todosGroup.DELETE("/:id", r.todoHandler.Remove, r.authMiddleware.Authenticate)
	}
}
