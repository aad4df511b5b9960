package services

import (
	"errors"
	"time"

	"github.com/meghk47/FindWorker/entity"
	"github.com/meghk47/FindWorker/repository"
)

var (
	ErrWorkerNotFound        = errors.New("worker not found")
	ErrPaymentDetailRequired = errors.New("payment details are required")
	ErrUnknownPaymentMethod  = errors.New("unknown payment method")
	ErrRequestNotFound       = errors.New("booking request not found")
	ErrAlreadyProcessed      = errors.New("request is not pending")
)

// The mock gateway accepts exactly these methods and nothing else.
var paymentMethods = []string{"UPI", "Credit Card", "Cash on Work"}

// BookingService runs the two-step booking flow and the admin
// accept/reject transitions.
type BookingService struct {
	workerRepo  *repository.WorkerRepository
	requestRepo *repository.BookingRequestRepository
}

func NewBookingService(workers *repository.WorkerRepository, requests *repository.BookingRequestRepository) *BookingService {
	return &BookingService{workerRepo: workers, requestRepo: requests}
}

// Book is the date-selection step. The date is free text and is not
// validated as a real calendar date; an empty date defaults to today
// in day/month/year form, matching the pre-filled dialog field.
func (s *BookingService) Book(workerID uint, workDate string) (*entity.Worker, string, error) {
	worker, err := s.workerRepo.FindByID(workerID)
	if err != nil {
		return nil, "", ErrWorkerNotFound
	}
	if workDate == "" {
		workDate = time.Now().Format("02/01/2006")
	}
	return worker, workDate, nil
}

// Pay is the mock payment step. Once the detail field is non-empty the
// gateway cannot fail: exactly one request is persisted with status
// Pending and payment status Success.
func (s *BookingService) Pay(username string, workerID uint, workDate, method, detail string) (*entity.BookingRequest, error) {
	worker, workDate, err := s.Book(workerID, workDate)
	if err != nil {
		return nil, err
	}

	valid := false
	for _, m := range paymentMethods {
		if m == method {
			valid = true
			break
		}
	}
	if !valid {
		return nil, ErrUnknownPaymentMethod
	}
	if detail == "" {
		return nil, ErrPaymentDetailRequired
	}

	req := &entity.BookingRequest{
		CustomerUser:  username,
		WorkerName:    worker.Name, // by name, not id
		WorkDate:      workDate,
		Status:        entity.StatusPending,
		PaymentStatus: "Success",
	}
	if err := s.requestRepo.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

// ListMine returns the caller's own requests, re-queried in full.
func (s *BookingService) ListMine(username string) ([]entity.BookingRequest, error) {
	return s.requestRepo.FindByCustomer(username)
}

// ListAll returns every request for the admin view.
func (s *BookingService) ListAll() ([]entity.BookingRequest, error) {
	return s.requestRepo.FindAll()
}

// CountByStatus feeds the admin dashboard counters.
func (s *BookingService) CountByStatus(status string) (int64, error) {
	return s.requestRepo.CountByStatus(status)
}

// UpdateStatus applies an admin accept/reject. Only Pending requests
// transition; nothing ever moves back to Pending.
func (s *BookingService) UpdateStatus(id uint, status string) (*entity.BookingRequest, error) {
	if status != entity.StatusAccepted && status != entity.StatusRejected {
		return nil, errors.New("status must be Accepted or Rejected")
	}

	req, err := s.requestRepo.FindByID(id)
	if err != nil {
		return nil, ErrRequestNotFound
	}
	if req.Status != entity.StatusPending {
		return nil, ErrAlreadyProcessed
	}

	req.Status = status
	if err := s.requestRepo.Save(req); err != nil {
		return nil, err
	}
	return req, nil
}
