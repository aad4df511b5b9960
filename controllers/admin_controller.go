package controllers

import (
	"strconv"

	"github.com/meghk47/FindWorker/entity"
	"github.com/meghk47/FindWorker/pkg/resp"
	"github.com/meghk47/FindWorker/services"
	"github.com/meghk47/FindWorker/ws"

	"github.com/gin-gonic/gin"
)

type AddWorkerRequest struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Experience   string `json:"experience"`
	Rate         string `json:"rate"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Availability string `json:"availability"`
}

type AdminController struct {
	Bookings *services.BookingService
	Workers  *services.WorkerService
	Hub      *ws.RequestHub
}

func NewAdminController(bookings *services.BookingService, workers *services.WorkerService, hub *ws.RequestHub) *AdminController {
	return &AdminController{Bookings: bookings, Workers: workers, Hub: hub}
}

// GET /admin/requests — every request, refreshed in full each call.
func (ac *AdminController) Requests(c *gin.Context) {
	requests, err := ac.Bookings.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	items := make([]gin.H, len(requests))
	for i, r := range requests {
		items[i] = gin.H{
			"id":           r.ID,
			"customerUser": r.CustomerUser,
			"workerName":   r.WorkerName,
			"workDate":     r.WorkDate,
			"status":       r.Status,
		}
	}
	resp.OK(c, gin.H{"items": items})
}

// PATCH /admin/requests/:id/accept
func (ac *AdminController) Accept(c *gin.Context) {
	ac.updateStatus(c, entity.StatusAccepted)
}

// PATCH /admin/requests/:id/reject
func (ac *AdminController) Reject(c *gin.Context) {
	ac.updateStatus(c, entity.StatusRejected)
}

func (ac *AdminController) updateStatus(c *gin.Context, status string) {
	id, _ := strconv.Atoi(c.Param("id"))

	booking, err := ac.Bookings.UpdateStatus(uint(id), status)
	switch err {
	case nil:
	case services.ErrRequestNotFound:
		resp.NotFound(c, err.Error())
		return
	case services.ErrAlreadyProcessed:
		resp.BadRequest(c, err.Error())
		return
	default:
		resp.ServerError(c, err)
		return
	}

	ac.Hub.Notify("updated", booking)

	resp.OK(c, gin.H{"id": booking.ID, "status": booking.Status})
}

// POST /admin/workers — manual worker-record insertion form.
func (ac *AdminController) AddWorker(c *gin.Context) {
	var req AddWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	worker, err := ac.Workers.Add(req.Name, req.Category, req.Experience, req.Rate, req.Phone, req.Address, req.Availability)
	switch err {
	case nil:
	case services.ErrFieldsRequired:
		resp.BadRequest(c, err.Error())
		return
	default:
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, workerCard(*worker))
}

// GET /admin/dashboard — headline counters for the control panel.
func (ac *AdminController) Dashboard(c *gin.Context) {
	pending, err := ac.Bookings.CountByStatus(entity.StatusPending)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	accepted, err := ac.Bookings.CountByStatus(entity.StatusAccepted)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	rejected, err := ac.Bookings.CountByStatus(entity.StatusRejected)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	workers, err := ac.Workers.Count()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"pendingRequests":  pending,
		"acceptedRequests": accepted,
		"rejectedRequests": rejected,
		"workers":          workers,
	})
}
