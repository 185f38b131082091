package entity

import (
	"time"

	"github.com/google/uuid"
)

type MovieScreening struct {
	Base
	MovieID uuid.UUID `gorm:"type:uuid;not null;index"`
	HallID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Date    time.Time `gorm:"not null"`

	Movie *Movie      `gorm:"foreignKey:MovieID"`
	Hall  *CinemaHall `gorm:"foreignKey:HallID"`
}

func (MovieScreening) TableName() string { return TableMovieScreenings }
