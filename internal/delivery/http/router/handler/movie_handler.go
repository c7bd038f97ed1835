package handler

import (
	"net/http"

	"catalog/internal/delivery/http/response"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/errors"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
)

type movieRequest struct {
	Title      *string `json:"title"`
	ReleasedAt *string `json:"released_at"`
	IsActive   *bool   `json:"is_active"`
}

var movieFields = bodyFields{
	"title":       domainerrors.ErrInvalidTitle,
	"released_at": domainerrors.ErrInvalidReleaseDate,
}

// MovieHandler serves the movie endpoints.
type MovieHandler struct {
	movies usecase.MovieUsecase
	roles  usecase.RoleUsecase
}

// NewMovieHandler is the constructor for MovieHandler, injected by Fx.
func NewMovieHandler(movies usecase.MovieUsecase, roles usecase.RoleUsecase) *MovieHandler {
	return &MovieHandler{
		movies: movies,
		roles:  roles,
	}
}

// List returns one page of active movies with their credits.
func (h *MovieHandler) List(c echo.Context) error {
	input, err := usecase.ParseSearch(c.QueryParam("page"), c.QueryParam("limit"))
	if err != nil {
		return err
	}

	ctx := requestContext(c)
	page, err := h.movies.Search(ctx, input)
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]movieDetailView, 0, len(page.Items))
	for _, movie := range page.Items {
		credits, err := h.roles.PeopleForMovie(ctx, movie.ID)
		if err != nil {
			return errors.WithStack(err)
		}
		items = append(items, presentMovieDetail(movie, credits))
	}

	return response.OK(c, presentPage(page, items))
}

// Get returns one active movie with its credits.
func (h *MovieHandler) Get(c echo.Context) error {
	movieID, err := usecase.ParseID(c.Param("id"))
	if err != nil {
		return err
	}

	movie, err := h.movies.GetByID(requestContext(c), movieID)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.renderDetail(c, movie)
}

// Create adds a movie.
func (h *MovieHandler) Create(c echo.Context) error {
	var req movieRequest
	if err := bindBody(c, &req, movieFields); err != nil {
		return err
	}

	movie, err := h.movies.Create(requestContext(c), &usecase.CreateMovieInput{
		Title:      deref(req.Title),
		ReleasedAt: deref(req.ReleasedAt),
		IsActive:   req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, presentMovieDetail(movie, nil))
}

// Update applies a partial update.
func (h *MovieHandler) Update(c echo.Context) error {
	movieID, err := usecase.ParseID(c.Param("id"))
	if err != nil {
		return err
	}

	var req movieRequest
	if err := bindBody(c, &req, movieFields); err != nil {
		return err
	}

	movie, err := h.movies.Update(requestContext(c), movieID, &usecase.UpdateMovieInput{
		Title:      req.Title,
		ReleasedAt: req.ReleasedAt,
		IsActive:   req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}
	if !movie.IsActive {
		return response.OK(c, presentMovieDetail(movie, nil))
	}

	return h.renderDetail(c, movie)
}

// Delete deactivates a movie.
func (h *MovieHandler) Delete(c echo.Context) error {
	movieID, err := usecase.ParseID(c.Param("id"))
	if err != nil {
		return err
	}

	movie, err := h.movies.Delete(requestContext(c), movieID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentMovieDetail(movie, nil), "Deleted")
}

func (h *MovieHandler) renderDetail(c echo.Context, movie *entity.Movie) error {
	credits, err := h.roles.PeopleForMovie(requestContext(c), movie.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, presentMovieDetail(movie, credits))
}
