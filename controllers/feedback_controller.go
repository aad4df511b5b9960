package controllers

import (
	"github.com/meghk47/FindWorker/pkg/resp"
	"github.com/meghk47/FindWorker/services"
	"github.com/meghk47/FindWorker/utils"

	"github.com/gin-gonic/gin"
)

type FeedbackRequest struct {
	Comment string `json:"comment"`
}

type FeedbackController struct {
	Feedback *services.FeedbackService
}

func NewFeedbackController(feedback *services.FeedbackService) *FeedbackController {
	return &FeedbackController{Feedback: feedback}
}

// POST /feedback
func (fc *FeedbackController) Submit(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fb, err := fc.Feedback.Submit(utils.CurrentUsername(c), req.Comment)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if fb == nil {
		// empty comment: silently dropped, matching the original form
		resp.OK(c, gin.H{"stored": false})
		return
	}
	resp.Created(c, gin.H{"stored": true})
}
