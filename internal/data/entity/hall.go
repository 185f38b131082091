package entity

type CinemaHall struct {
	Base
	Name string `gorm:"size:20;not null"`
}

func (CinemaHall) TableName() string { return TableCinemaHalls }
