package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"-"` // stored as entered, compared verbatim at login
	Role     string `gorm:"not null;default:customer" json:"role"`
	Phone    string `json:"phone"`
}
