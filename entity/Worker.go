package entity

import (
	"gorm.io/gorm"
)

// Worker is a directory entry describing a laborer available for hire,
// not a user account. Rows are only ever appended.
type Worker struct {
	gorm.Model
	Name         string `gorm:"not null" json:"name"`
	Category     string `json:"category"`
	Experience   string `json:"experience"`
	Rate         string `json:"rate"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Availability string `json:"availability"`
	Rating       string `json:"rating"`
}
