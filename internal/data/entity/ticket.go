package entity

import "github.com/google/uuid"

// Ticket outlives its seat: SeatID is cleared when the seat is deleted.
type Ticket struct {
	Base
	MovieScreeningID uuid.UUID  `gorm:"type:uuid;not null;index"`
	SeatID           *uuid.UUID `gorm:"type:uuid;index"`
	Price            int        `gorm:"not null"`

	MovieScreening *MovieScreening `gorm:"foreignKey:MovieScreeningID"`
	Seat           *Seat           `gorm:"foreignKey:SeatID"`
}

func (Ticket) TableName() string { return TableTickets }
