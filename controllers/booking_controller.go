package controllers

import (
	"strconv"

	"github.com/meghk47/FindWorker/pkg/resp"
	"github.com/meghk47/FindWorker/services"
	"github.com/meghk47/FindWorker/utils"
	"github.com/meghk47/FindWorker/ws"

	"github.com/gin-gonic/gin"
)

type BookRequest struct {
	WorkDate string `json:"workDate"` // free text; blank means today
}

type PayRequest struct {
	WorkDate string `json:"workDate"`
	Method   string `json:"method" binding:"required"`
	Detail   string `json:"detail"` // UPI id / card no; only emptiness is rejected
}

type BookingController struct {
	Bookings *services.BookingService
	Hub      *ws.RequestHub
}

func NewBookingController(bookings *services.BookingService, hub *ws.RequestHub) *BookingController {
	return &BookingController{Bookings: bookings, Hub: hub}
}

// POST /workers/:id/book — the date step of the booking dialog.
func (bc *BookingController) Book(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	worker, workDate, err := bc.Bookings.Book(uint(id), req.WorkDate)
	if err != nil {
		resp.NotFound(c, err.Error())
		return
	}

	resp.OK(c, gin.H{
		"worker":   workerCard(*worker),
		"workDate": workDate,
		"next":     "payment",
	})
}

// POST /workers/:id/pay — the mock payment step; persists the request.
func (bc *BookingController) Pay(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	booking, err := bc.Bookings.Pay(utils.CurrentUsername(c), uint(id), req.WorkDate, req.Method, req.Detail)
	switch err {
	case nil:
	case services.ErrWorkerNotFound:
		resp.NotFound(c, err.Error())
		return
	case services.ErrUnknownPaymentMethod, services.ErrPaymentDetailRequired:
		resp.BadRequest(c, err.Error())
		return
	default:
		resp.ServerError(c, err)
		return
	}

	bc.Hub.Notify("created", booking)

	resp.Created(c, gin.H{
		"id":            booking.ID,
		"workerName":    booking.WorkerName,
		"workDate":      booking.WorkDate,
		"status":        booking.Status,
		"paymentStatus": booking.PaymentStatus,
		"message":       "Booking request sent! Wait for worker acceptance.",
	})
}

// GET /bookings — the caller's own requests.
func (bc *BookingController) ListMine(c *gin.Context) {
	bookings, err := bc.Bookings.ListMine(utils.CurrentUsername(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	items := make([]gin.H, len(bookings))
	for i, b := range bookings {
		items[i] = gin.H{
			"workerName":    b.WorkerName,
			"workDate":      b.WorkDate,
			"status":        b.Status,
			"paymentStatus": b.PaymentStatus,
		}
	}
	resp.OK(c, gin.H{"items": items})
}
