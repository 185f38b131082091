package entity

type Genre struct {
	Base
	Name        string `gorm:"size:50;not null"`
	IsForAdults bool   `gorm:"not null;default:false"`
}

func (Genre) TableName() string { return TableGenres }
