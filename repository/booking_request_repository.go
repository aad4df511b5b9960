package repository

import (
	"github.com/meghk47/FindWorker/entity"

	"gorm.io/gorm"
)

// BookingRequestRepository talks to the requests table only.
type BookingRequestRepository struct {
	DB *gorm.DB
}

func NewBookingRequestRepository(db *gorm.DB) *BookingRequestRepository {
	return &BookingRequestRepository{DB: db}
}

func (r *BookingRequestRepository) Create(req *entity.BookingRequest) error {
	return r.DB.Create(req).Error
}

func (r *BookingRequestRepository) FindByID(id uint) (*entity.BookingRequest, error) {
	var req entity.BookingRequest
	if err := r.DB.First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// FindByCustomer returns one customer's requests in insertion order.
func (r *BookingRequestRepository) FindByCustomer(username string) ([]entity.BookingRequest, error) {
	var reqs []entity.BookingRequest
	err := r.DB.Where("customer_user = ?", username).Order("id ASC").Find(&reqs).Error
	return reqs, err
}

// FindAll returns every request, pending and processed alike.
func (r *BookingRequestRepository) FindAll() ([]entity.BookingRequest, error) {
	var reqs []entity.BookingRequest
	err := r.DB.Order("id ASC").Find(&reqs).Error
	return reqs, err
}

func (r *BookingRequestRepository) Save(req *entity.BookingRequest) error {
	return r.DB.Save(req).Error
}

func (r *BookingRequestRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.BookingRequest{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
