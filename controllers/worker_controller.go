package controllers

import (
	"github.com/meghk47/FindWorker/entity"
	"github.com/meghk47/FindWorker/pkg/resp"
	"github.com/meghk47/FindWorker/services"

	"github.com/gin-gonic/gin"
)

type WorkerController struct {
	Workers *services.WorkerService
}

func NewWorkerController(workers *services.WorkerService) *WorkerController {
	return &WorkerController{Workers: workers}
}

// workerCard carries everything a directory card shows.
func workerCard(w entity.Worker) gin.H {
	return gin.H{
		"id":           w.ID,
		"name":         w.Name,
		"category":     w.Category,
		"experience":   w.Experience,
		"rating":       w.Rating,
		"address":      w.Address,
		"availability": w.Availability,
		"phone":        w.Phone,
		"rate":         w.Rate,
	}
}

// GET /workers
func (wc *WorkerController) List(c *gin.Context) {
	workers, err := wc.Workers.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	items := make([]gin.H, len(workers))
	for i, w := range workers {
		items[i] = workerCard(w)
	}
	resp.OK(c, gin.H{"items": items})
}
