package entity

import (
	"time"

	"github.com/google/uuid"
)

// Table names shared by the repositories and the delete registry.
const (
	TableGenres          = "genres"
	TableActors          = "actors"
	TableMovies          = "movies"
	TableMovieGenres     = "movie_genres"
	TableMovieActors     = "movie_actors"
	TableCinemaHalls     = "cinema_halls"
	TableSeats           = "seats"
	TableMovieScreenings = "movie_screenings"
	TableTickets         = "tickets"
	TableUsers           = "users"
)

// Base is embedded by every entity addressed by id. Rows are hard deleted.
type Base struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

// BaseSimple is embedded by association rows, which are never updated.
type BaseSimple struct {
	CreatedAt time.Time `gorm:"not null"`
}

// NewBase stamps a fresh id and creation time.
func NewBase() Base {
	now := time.Now().UTC()
	return Base{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
