package entity

import (
	"github.com/google/uuid"
)

// MovieGenre links a movie to a genre. Position keeps the order the
// genres were given in.
type MovieGenre struct {
	BaseSimple
	MovieID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	GenreID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Position int       `gorm:"not null;default:0"`

	Movie *Movie `gorm:"foreignKey:MovieID"`
	Genre *Genre `gorm:"foreignKey:GenreID"`
}

func (MovieGenre) TableName() string { return TableMovieGenres }

type MovieActor struct {
	BaseSimple
	MovieID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	ActorID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Position int       `gorm:"not null;default:0"`

	Movie *Movie `gorm:"foreignKey:MovieID"`
	Actor *Actor `gorm:"foreignKey:ActorID"`
}

func (MovieActor) TableName() string { return TableMovieActors }
