package entity

import (
	"time"

	"catalog/internal/util"
)

// ReleaseDateLayout is the wire and storage layout of a movie release date.
const ReleaseDateLayout = time.DateOnly

// Movie is a catalogued film.
type Movie struct {
	ID         int64     // Storage-assigned identifier.
	Title      string    // 5 to 255 characters.
	ReleasedAt time.Time // Release date, truncated to the day.
	IsActive   bool      // Soft-delete flag; inactive movies are hidden from lookups.
	CreatedAt  time.Time // Set once when the movie is created.
}

// ReleaseYear returns the year component of the release date.
func (m *Movie) ReleaseYear() int {
	return m.ReleasedAt.Year()
}

// ReleaseRoman returns the release year as a Roman numeral.
// It fails with util.ErrOutOfRange for years past 3999.
func (m *Movie) ReleaseRoman() (string, error) {
	return util.ToRoman(m.ReleaseYear())
}

// ReleaseDate formats the release date with ReleaseDateLayout.
func (m *Movie) ReleaseDate() string {
	return m.ReleasedAt.Format(ReleaseDateLayout)
}
