package controllers

import (
	"github.com/meghk47/FindWorker/pkg/resp"
	"github.com/meghk47/FindWorker/services"
	"github.com/meghk47/FindWorker/utils"

	"github.com/gin-gonic/gin"
)

type SetLanguageRequest struct {
	Language string `json:"language" binding:"required"`
}

type SwitchViewRequest struct {
	View string `json:"view" binding:"required"`
}

type SessionController struct {
	Sessions *services.SessionService
}

func NewSessionController(sessions *services.SessionService) *SessionController {
	return &SessionController{Sessions: sessions}
}

// GET /session
func (sc *SessionController) Current(c *gin.Context) {
	sess, err := sc.Sessions.Get(utils.CurrentSession(c))
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	resp.OK(c, sess)
}

// PATCH /session/language
func (sc *SessionController) SetLanguage(c *gin.Context) {
	var req SetLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	sess, err := sc.Sessions.SetLanguage(utils.CurrentSession(c), req.Language)
	switch err {
	case nil:
	case services.ErrUnknownLanguage:
		resp.BadRequest(c, err.Error())
		return
	case services.ErrSessionNotFound:
		resp.Unauthorized(c, err.Error())
		return
	default:
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"language": sess.Language, "view": sess.CurrentView})
}

// PATCH /session/view
func (sc *SessionController) SwitchView(c *gin.Context) {
	var req SwitchViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	sess, err := sc.Sessions.SwitchView(utils.CurrentSession(c), req.View)
	switch err {
	case nil:
	case services.ErrUnknownView:
		resp.BadRequest(c, err.Error())
		return
	case services.ErrSessionNotFound:
		resp.Unauthorized(c, err.Error())
		return
	default:
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"view": sess.CurrentView})
}
