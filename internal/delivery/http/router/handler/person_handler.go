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

type personRequest struct {
	FirstName *string  `json:"first_name"`
	LastName  *string  `json:"last_name"`
	Aliases   []string `json:"aliases"`
	IsActive  *bool    `json:"is_active"`
}

var personFields = bodyFields{
	"first_name": domainerrors.ErrInvalidFirstName,
	"last_name":  domainerrors.ErrInvalidLastName,
	"aliases":    domainerrors.ErrInvalidAlias,
}

func (r *personRequest) createInput() *usecase.CreatePersonInput {
	return &usecase.CreatePersonInput{
		FirstName: deref(r.FirstName),
		LastName:  deref(r.LastName),
		Aliases:   r.Aliases,
		IsActive:  r.IsActive,
	}
}

func (r *personRequest) updateInput() *usecase.UpdatePersonInput {
	return &usecase.UpdatePersonInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Aliases:   r.Aliases,
		IsActive:  r.IsActive,
	}
}

// PersonHandler serves the people endpoints.
type PersonHandler struct {
	people usecase.PeopleUsecase
	roles  usecase.RoleUsecase
}

// NewPersonHandler is the constructor for PersonHandler, injected by Fx.
func NewPersonHandler(people usecase.PeopleUsecase, roles usecase.RoleUsecase) *PersonHandler {
	return &PersonHandler{
		people: people,
		roles:  roles,
	}
}

// List returns one page of active people.
func (h *PersonHandler) List(c echo.Context) error {
	input, err := usecase.ParseSearch(c.QueryParam("page"), c.QueryParam("limit"))
	if err != nil {
		return err
	}

	ctx := requestContext(c)
	page, err := h.people.Search(ctx, input)
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]personDetailView, 0, len(page.Items))
	for _, person := range page.Items {
		filmography, err := h.roles.MoviesForPerson(ctx, person.ID)
		if err != nil {
			return errors.WithStack(err)
		}
		items = append(items, presentPersonDetail(person, filmography))
	}

	return response.OK(c, presentPage(page, items))
}

// Get returns one active person with their filmography.
func (h *PersonHandler) Get(c echo.Context) error {
	personID, err := usecase.ParseID(c.Param("id"))
	if err != nil {
		return err
	}

	ctx := requestContext(c)
	person, err := h.people.GetByID(ctx, personID)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.renderDetail(c, person)
}

// Create adds a person and their aliases.
func (h *PersonHandler) Create(c echo.Context) error {
	var req personRequest
	if err := bindBody(c, &req, personFields); err != nil {
		return err
	}

	person, err := h.people.Create(requestContext(c), req.createInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, presentPersonDetail(person, nil))
}

// Update applies a partial update; new aliases are appended.
func (h *PersonHandler) Update(c echo.Context) error {
	personID, err := usecase.ParseID(c.Param("id"))
	if err != nil {
		return err
	}

	var req personRequest
	if err := bindBody(c, &req, personFields); err != nil {
		return err
	}

	person, err := h.people.Update(requestContext(c), personID, req.updateInput())
	if err != nil {
		return errors.WithStack(err)
	}
	if !person.IsActive {
		return response.OK(c, presentPersonDetail(person, nil))
	}

	return h.renderDetail(c, person)
}

// Delete deactivates a person. Their credits are kept but no longer listed.
func (h *PersonHandler) Delete(c echo.Context) error {
	personID, err := usecase.ParseID(c.Param("id"))
	if err != nil {
		return err
	}

	person, err := h.people.Delete(requestContext(c), personID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentPersonDetail(person, nil), "Deleted")
}

func (h *PersonHandler) renderDetail(c echo.Context, person *entity.Person) error {
	filmography, err := h.roles.MoviesForPerson(requestContext(c), person.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, presentPersonDetail(person, filmography))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
