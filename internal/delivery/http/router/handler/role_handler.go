package handler

import (
	"context"

	"catalog/internal/delivery/http/response"
	"catalog/internal/domain/entity"
	"catalog/internal/errors"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
)

// roleOperation is RoleUsecase.Add or RoleUsecase.Delete.
type roleOperation func(ctx context.Context, kind entity.RoleKind, personID, movieID int64) (*entity.Person, *entity.Movie, error)

// RoleHandler serves the credit endpoints from both the movie and the person side.
type RoleHandler struct {
	roles usecase.RoleUsecase
}

// NewRoleHandler is the constructor for RoleHandler, injected by Fx.
func NewRoleHandler(roles usecase.RoleUsecase) *RoleHandler {
	return &RoleHandler{roles: roles}
}

// AddToMovie credits a person on the movie and returns the movie with its credits.
func (h *RoleHandler) AddToMovie(c echo.Context) error {
	return h.onMovie(c, h.roles.Add)
}

// RemoveFromMovie removes a credit and returns the movie with its credits.
func (h *RoleHandler) RemoveFromMovie(c echo.Context) error {
	return h.onMovie(c, h.roles.Delete)
}

// AddToPerson credits the person on a movie and returns the person with their filmography.
func (h *RoleHandler) AddToPerson(c echo.Context) error {
	return h.onPerson(c, h.roles.Add)
}

// RemoveFromPerson removes a credit and returns the person with their filmography.
func (h *RoleHandler) RemoveFromPerson(c echo.Context) error {
	return h.onPerson(c, h.roles.Delete)
}

// onMovie serves /movies/:id/:role/:personId.
func (h *RoleHandler) onMovie(c echo.Context, op roleOperation) error {
	movieID, err := usecase.ParseID(c.Param("id"))
	if err != nil {
		return err
	}
	kind, err := usecase.ParseRoleKind(c.Param("role"))
	if err != nil {
		return err
	}
	personID, err := usecase.ParseID(c.Param("personId"))
	if err != nil {
		return err
	}

	ctx := requestContext(c)
	_, movie, err := op(ctx, kind, personID, movieID)
	if err != nil {
		return errors.WithStack(err)
	}

	credits, err := h.roles.PeopleForMovie(ctx, movie.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, presentMovieDetail(movie, credits))
}

// onPerson serves /people/:id/movies/:role/:movieId.
func (h *RoleHandler) onPerson(c echo.Context, op roleOperation) error {
	personID, err := usecase.ParseID(c.Param("id"))
	if err != nil {
		return err
	}
	kind, err := usecase.ParseRoleKind(c.Param("role"))
	if err != nil {
		return err
	}
	movieID, err := usecase.ParseID(c.Param("movieId"))
	if err != nil {
		return err
	}

	ctx := requestContext(c)
	person, _, err := op(ctx, kind, personID, movieID)
	if err != nil {
		return errors.WithStack(err)
	}

	filmography, err := h.roles.MoviesForPerson(ctx, person.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, presentPersonDetail(person, filmography))
}
