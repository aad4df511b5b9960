package repository

import (
	"github.com/meghk47/FindWorker/entity"

	"gorm.io/gorm"
)

// WorkerRepository talks to the workers table only.
type WorkerRepository struct {
	DB *gorm.DB
}

func NewWorkerRepository(db *gorm.DB) *WorkerRepository {
	return &WorkerRepository{DB: db}
}

// FindAll returns every worker in insertion order. The directory is
// tiny by design, so there is no filtering or pagination.
func (r *WorkerRepository) FindAll() ([]entity.Worker, error) {
	var workers []entity.Worker
	err := r.DB.Order("id ASC").Find(&workers).Error
	return workers, err
}

func (r *WorkerRepository) FindByID(id uint) (*entity.Worker, error) {
	var worker entity.Worker
	if err := r.DB.First(&worker, id).Error; err != nil {
		return nil, err
	}
	return &worker, nil
}

func (r *WorkerRepository) Create(worker *entity.Worker) error {
	return r.DB.Create(worker).Error
}

func (r *WorkerRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Worker{}).Count(&count).Error
	return count, err
}
