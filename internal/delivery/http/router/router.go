// Package router contains the route table of the HTTP delivery.
package router

import (
	"catalog/internal/delivery/http/middleware"
	"catalog/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	PersonHandler  *handler.PersonHandler
	MovieHandler   *handler.MovieHandler
	RoleHandler    *handler.RoleHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	personHandler  *handler.PersonHandler
	movieHandler   *handler.MovieHandler
	roleHandler    *handler.RoleHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		personHandler:  params.PersonHandler,
		movieHandler:   params.MovieHandler,
		roleHandler:    params.RoleHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Reads are public; every write needs a session.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)

	api := e.Group("/api/v1")
	login := r.authMiddleware.Authenticate

	// Auth routes
	api.POST("/auth", r.authHandler.Login)
	api.DELETE("/auth", r.authHandler.Logout, login)

	// People routes
	people := api.Group("/people")
	{
		people.GET("", r.personHandler.List)
		people.POST("", r.personHandler.Create, login)
		people.GET("/:id", r.personHandler.Get)
		people.PATCH("/:id", r.personHandler.Update, login)
		people.PUT("/:id", r.personHandler.Update, login)
		people.DELETE("/:id", r.personHandler.Delete, login)
		people.POST("/:id/movies/:role/:movieId", r.roleHandler.AddToPerson, login)
		people.DELETE("/:id/movies/:role/:movieId", r.roleHandler.RemoveFromPerson, login)
	}

	// Movie routes
	movies := api.Group("/movies")
	{
		movies.GET("", r.movieHandler.List)
		movies.POST("", r.movieHandler.Create, login)
		movies.GET("/:id", r.movieHandler.Get)
		movies.PATCH("/:id", r.movieHandler.Update, login)
		movies.PUT("/:id", r.movieHandler.Update, login)
		movies.DELETE("/:id", r.movieHandler.Delete, login)
		movies.POST("/:id/:role/:personId", r.roleHandler.AddToMovie, login)
		movies.DELETE("/:id/:role/:personId", r.roleHandler.RemoveFromMovie, login)
	}
}
