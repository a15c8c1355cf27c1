// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"register/internal/delivery/http/middleware"
	"register/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	PersonHandler  *handler.PersonHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	personHandler  *handler.PersonHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		personHandler:  params.PersonHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/register", r.authHandler.Register)
	}

	personGroup := api.Group("/persons")
	personGroup.Use(r.authMiddleware.Authenticate)
	{
		personGroup.POST("", r.personHandler.Create)
		personGroup.GET("", r.personHandler.List)
		personGroup.GET("/:id", r.personHandler.Get)
		personGroup.PUT("/:id", r.personHandler.Update)
		personGroup.DELETE("/:id", r.personHandler.Delete)
	}
}
