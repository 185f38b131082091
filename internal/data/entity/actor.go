package entity

type Actor struct {
	Base
	Name        string `gorm:"size:80;not null"`
	Age         int    `gorm:"not null"`
	Nationality string `gorm:"size:54;not null"`
}

func (Actor) TableName() string { return TableActors }
