package entity

// User is the identity placeholder managed from the command line.
type User struct {
	Base
	Username     string `gorm:"size:150;not null;uniqueIndex"`
	PasswordHash string `gorm:"column:password;size:255;not null"`
	IsStaff      bool   `gorm:"not null;default:false"`
}

func (User) TableName() string { return TableUsers }
