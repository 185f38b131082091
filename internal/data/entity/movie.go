package entity

import "github.com/google/uuid"

// Movie keeps its genre and actor links in MovieGenre and MovieActor rows.
// GenreIDs and ActorIDs are filled by the repository and never persisted on
// the movies table itself.
type Movie struct {
	Base
	Title    string `gorm:"size:185;not null"`
	Duration int    `gorm:"not null"`

	GenreIDs []uuid.UUID `gorm:"-"`
	ActorIDs []uuid.UUID `gorm:"-"`
}

func (Movie) TableName() string { return TableMovies }
