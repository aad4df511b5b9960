package entity

import (
	"gorm.io/gorm"
)

const (
	StatusPending  = "Pending"
	StatusAccepted = "Accepted"
	StatusRejected = "Rejected"
)

// BookingRequest is a customer's request to hire a worker on a date,
// subject to admin accept/reject.
type BookingRequest struct {
	gorm.Model
	CustomerUser string `gorm:"not null;index" json:"customerUser"`
	// Workers are referenced by name, not id: two workers with the same
	// name are indistinguishable in request history.
	WorkerName    string `gorm:"not null" json:"workerName"`
	WorkDate      string `json:"workDate"` // free text dd/mm/yyyy, never parsed
	Status        string `gorm:"not null;default:Pending" json:"status"`
	PaymentStatus string `json:"paymentStatus"`
}

func (BookingRequest) TableName() string { return "requests" }
