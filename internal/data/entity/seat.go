package entity

import "github.com/google/uuid"

type Seat struct {
	Base
	Row    int       `gorm:"not null"`
	Number int       `gorm:"not null"`
	HallID uuid.UUID `gorm:"type:uuid;not null;index"`

	Hall *CinemaHall `gorm:"foreignKey:HallID"`
}

func (Seat) TableName() string { return TableSeats }
