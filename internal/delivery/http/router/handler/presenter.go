package handler

import (
	"time"

	"catalog/internal/delivery/http/response"
	"catalog/internal/domain/entity"
	"catalog/internal/usecase"
)

type releaseView struct {
	Date  string `json:"date"`
	Year  int    `json:"year"`
	Roman string `json:"roman,omitempty"`
}

type movieView struct {
	ID         int64       `json:"id"`
	Title      string      `json:"title"`
	ReleasedAt releaseView `json:"released_at"`
	IsActive   bool        `json:"is_active"`
	CreatedAt  time.Time   `json:"created_at"`
}

type personView struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	Aliases   []string  `json:"aliases"`
}

// personDetailView is a person with the movies they are credited on, keyed by role.
type personDetailView struct {
	personView
	Movies map[string][]movieView `json:"movies"`
}

// movieDetailView is a movie with its credited people.
type movieDetailView struct {
	movieView
	Actors    []personView `json:"actors"`
	Directors []personView `json:"directors"`
	Producers []personView `json:"producers"`
}

// presentRelease omits the numeral for years it cannot be written in.
func presentRelease(movie *entity.Movie) releaseView {
	view := releaseView{
		Date: movie.ReleaseDate(),
		Year: movie.ReleaseYear(),
	}
	if roman, err := movie.ReleaseRoman(); err == nil {
		view.Roman = roman
	}

	return view
}

func presentMovie(movie *entity.Movie) movieView {
	return movieView{
		ID:         movie.ID,
		Title:      movie.Title,
		ReleasedAt: presentRelease(movie),
		IsActive:   movie.IsActive,
		CreatedAt:  movie.CreatedAt,
	}
}

func presentPerson(person *entity.Person) personView {
	return personView{
		ID:        person.ID,
		FirstName: person.FirstName,
		LastName:  person.LastName,
		IsActive:  person.IsActive,
		CreatedAt: person.CreatedAt,
		Aliases:   person.AliasValues(),
	}
}

func presentMovies(movies []*entity.Movie) []movieView {
	views := make([]movieView, 0, len(movies))
	for _, movie := range movies {
		views = append(views, presentMovie(movie))
	}

	return views
}

func presentPeople(people []*entity.Person) []personView {
	views := make([]personView, 0, len(people))
	for _, person := range people {
		views = append(views, presentPerson(person))
	}

	return views
}

// presentPersonDetail always lists every role, empty or not.
func presentPersonDetail(person *entity.Person, filmography entity.Filmography) personDetailView {
	movies := make(map[string][]movieView, len(entity.RoleKinds))
	for _, kind := range entity.RoleKinds {
		movies[kind.String()] = presentMovies(filmography[kind])
	}

	return personDetailView{
		personView: presentPerson(person),
		Movies:     movies,
	}
}

func presentMovieDetail(movie *entity.Movie, credits entity.Credits) movieDetailView {
	return movieDetailView{
		movieView: presentMovie(movie),
		Actors:    presentPeople(credits[entity.RoleActor]),
		Directors: presentPeople(credits[entity.RoleDirector]),
		Producers: presentPeople(credits[entity.RoleProducer]),
	}
}

func presentPage[T, V any](page *usecase.Page[T], items []V) response.Page[V] {
	return response.Page[V]{
		Items: items,
		Page:  page.Page,
		Limit: page.Limit,
		Total: page.Total,
	}
}
