package services

import (
	"strings"

	"github.com/meghk47/FindWorker/entity"
	"github.com/meghk47/FindWorker/repository"
)

// FeedbackService appends free-text comments. Write-only: nothing in
// the system ever lists feedback back.
type FeedbackService struct {
	feedbackRepo *repository.FeedbackRepository
}

func NewFeedbackService(repo *repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{feedbackRepo: repo}
}

// Submit stores a comment tied to the username. An empty comment is a
// silent no-op, not an error.
func (s *FeedbackService) Submit(username, comment string) (*entity.Feedback, error) {
	if strings.TrimSpace(comment) == "" {
		return nil, nil
	}

	fb := &entity.Feedback{User: username, Comment: comment}
	if err := s.feedbackRepo.Create(fb); err != nil {
		return nil, err
	}
	return fb, nil
}
