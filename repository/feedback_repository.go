package repository

import (
	"github.com/meghk47/FindWorker/entity"

	"gorm.io/gorm"
)

// FeedbackRepository appends to the feedback table. There is no read
// path anywhere in the system.
type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

func (r *FeedbackRepository) Create(fb *entity.Feedback) error {
	return r.DB.Create(fb).Error
}
