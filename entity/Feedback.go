package entity

import (
	"gorm.io/gorm"
)

// Feedback is append-only; nothing in the system reads it back.
type Feedback struct {
	gorm.Model
	User    string `gorm:"column:user" json:"user"`
	Comment string `json:"comment"`
}

func (Feedback) TableName() string { return "feedback" }
