package services

import (
	"testing"
	"time"

	"github.com/meghk47/FindWorker/entity"
	"github.com/meghk47/FindWorker/repository"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBookingService(t *testing.T) (*BookingService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewBookingService(
		repository.NewWorkerRepository(db),
		repository.NewBookingRequestRepository(db),
	)
	return svc, db
}

func seedWorker(t *testing.T, db *gorm.DB, name string) *entity.Worker {
	t.Helper()
	w := &entity.Worker{
		Name:         name,
		Category:     "Electrician",
		Experience:   "10 Yrs",
		Rate:         "₹300/hr",
		Phone:        "9890011223",
		Address:      "Shivaji Nagar, Pune",
		Availability: "9 AM - 6 PM",
		Rating:       "4.8",
	}
	assert.NoError(t, db.Create(w).Error)
	return w
}

func TestBookDefaultsDateToToday(t *testing.T) {
	svc, db := newBookingService(t)
	w := seedWorker(t, db, "Ramesh Patil")

	worker, workDate, err := svc.Book(w.ID, "")
	assert.NoError(t, err)
	assert.Equal(t, w.Name, worker.Name)
	assert.Equal(t, time.Now().Format("02/01/2006"), workDate)
}

func TestBookKeepsFreeTextDate(t *testing.T) {
	svc, db := newBookingService(t)
	w := seedWorker(t, db, "Ramesh Patil")

	_, workDate, err := svc.Book(w.ID, "next monday")
	assert.NoError(t, err)
	assert.Equal(t, "next monday", workDate)
}

func TestBookUnknownWorker(t *testing.T) {
	svc, _ := newBookingService(t)

	_, _, err := svc.Book(99, "01/09/2026")
	assert.ErrorIs(t, err, ErrWorkerNotFound)
}

func TestPayCreatesPendingRequest(t *testing.T) {
	svc, db := newBookingService(t)
	w := seedWorker(t, db, "Suresh Kale")

	req, err := svc.Pay("kiran", w.ID, "05/09/2026", "UPI", "kiran@upi")
	assert.NoError(t, err)
	assert.Equal(t, "kiran", req.CustomerUser)
	assert.Equal(t, "Suresh Kale", req.WorkerName)
	assert.Equal(t, "05/09/2026", req.WorkDate)
	assert.Equal(t, entity.StatusPending, req.Status)
	assert.Equal(t, "Success", req.PaymentStatus)

	var count int64
	db.Model(&entity.BookingRequest{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestPayRejectsUnknownMethod(t *testing.T) {
	svc, db := newBookingService(t)
	w := seedWorker(t, db, "Suresh Kale")

	_, err := svc.Pay("kiran", w.ID, "", "Bitcoin", "wallet")
	assert.ErrorIs(t, err, ErrUnknownPaymentMethod)

	var count int64
	db.Model(&entity.BookingRequest{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestPayRequiresDetail(t *testing.T) {
	svc, db := newBookingService(t)
	w := seedWorker(t, db, "Suresh Kale")

	for _, method := range []string{"UPI", "Credit Card", "Cash on Work"} {
		_, err := svc.Pay("kiran", w.ID, "", method, "")
		assert.ErrorIs(t, err, ErrPaymentDetailRequired)
	}
}

func TestListMineFiltersByCustomer(t *testing.T) {
	svc, db := newBookingService(t)
	w := seedWorker(t, db, "Suresh Kale")

	_, err := svc.Pay("kiran", w.ID, "", "UPI", "kiran@upi")
	assert.NoError(t, err)
	_, err = svc.Pay("meera", w.ID, "", "Cash on Work", "at door")
	assert.NoError(t, err)
	_, err = svc.Pay("kiran", w.ID, "", "Credit Card", "4111")
	assert.NoError(t, err)

	mine, err := svc.ListMine("kiran")
	assert.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, r := range mine {
		assert.Equal(t, "kiran", r.CustomerUser)
	}

	all, err := svc.ListAll()
	assert.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUpdateStatusAccept(t *testing.T) {
	svc, db := newBookingService(t)
	w := seedWorker(t, db, "Suresh Kale")

	first, err := svc.Pay("kiran", w.ID, "", "UPI", "kiran@upi")
	assert.NoError(t, err)
	second, err := svc.Pay("meera", w.ID, "", "UPI", "meera@upi")
	assert.NoError(t, err)

	updated, err := svc.UpdateStatus(first.ID, entity.StatusAccepted)
	assert.NoError(t, err)
	assert.Equal(t, entity.StatusAccepted, updated.Status)

	// the other request is untouched
	var other entity.BookingRequest
	assert.NoError(t, db.First(&other, second.ID).Error)
	assert.Equal(t, entity.StatusPending, other.Status)
}

func TestUpdateStatusOnlyOncePerRequest(t *testing.T) {
	svc, db := newBookingService(t)
	w := seedWorker(t, db, "Suresh Kale")

	req, err := svc.Pay("kiran", w.ID, "", "UPI", "kiran@upi")
	assert.NoError(t, err)

	_, err = svc.UpdateStatus(req.ID, entity.StatusRejected)
	assert.NoError(t, err)

	_, err = svc.UpdateStatus(req.ID, entity.StatusAccepted)
	assert.ErrorIs(t, err, ErrAlreadyProcessed)

	var stored entity.BookingRequest
	assert.NoError(t, db.First(&stored, req.ID).Error)
	assert.Equal(t, entity.StatusRejected, stored.Status)
}

func TestUpdateStatusUnknownRequest(t *testing.T) {
	svc, _ := newBookingService(t)

	_, err := svc.UpdateStatus(42, entity.StatusAccepted)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestUpdateStatusRejectsInvalidTarget(t *testing.T) {
	svc, db := newBookingService(t)
	w := seedWorker(t, db, "Suresh Kale")

	req, err := svc.Pay("kiran", w.ID, "", "UPI", "kiran@upi")
	assert.NoError(t, err)

	_, err = svc.UpdateStatus(req.ID, entity.StatusPending)
	assert.Error(t, err)
}

func TestCountByStatus(t *testing.T) {
	svc, db := newBookingService(t)
	w := seedWorker(t, db, "Suresh Kale")

	a, _ := svc.Pay("kiran", w.ID, "", "UPI", "kiran@upi")
	_, _ = svc.Pay("meera", w.ID, "", "UPI", "meera@upi")
	_, err := svc.UpdateStatus(a.ID, entity.StatusAccepted)
	assert.NoError(t, err)

	pending, err := svc.CountByStatus(entity.StatusPending)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), pending)

	accepted, err := svc.CountByStatus(entity.StatusAccepted)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), accepted)

	rejected, err := svc.CountByStatus(entity.StatusRejected)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), rejected)
}
