package services

import (
	"strings"

	"github.com/meghk47/FindWorker/entity"
	"github.com/meghk47/FindWorker/repository"
)

// Every manually added worker starts at this rating; ratings are never
// computed or updated anywhere in the system.
const defaultRating = "4.0"

// WorkerService serves the worker directory.
type WorkerService struct {
	workerRepo *repository.WorkerRepository
}

func NewWorkerService(repo *repository.WorkerRepository) *WorkerService {
	return &WorkerService{workerRepo: repo}
}

// List returns all workers in insertion order, re-queried on every call.
func (s *WorkerService) List() ([]entity.Worker, error) {
	return s.workerRepo.FindAll()
}

func (s *WorkerService) Get(id uint) (*entity.Worker, error) {
	return s.workerRepo.FindByID(id)
}

func (s *WorkerService) Count() (int64, error) {
	return s.workerRepo.Count()
}

// Add appends a worker record. All seven fields are required; the
// rating is fixed at 4.0.
func (s *WorkerService) Add(name, category, experience, rate, phone, address, availability string) (*entity.Worker, error) {
	fields := []string{name, category, experience, rate, phone, address, availability}
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return nil, ErrFieldsRequired
		}
	}

	worker := &entity.Worker{
		Name:         name,
		Category:     category,
		Experience:   experience,
		Rate:         rate,
		Phone:        phone,
		Address:      address,
		Availability: availability,
		Rating:       defaultRating,
	}
	if err := s.workerRepo.Create(worker); err != nil {
		return nil, err
	}
	return worker, nil
}
