package controllers

import (
	"net/http"
	"time"

	"github.com/meghk47/FindWorker/pkg/resp"
	"github.com/meghk47/FindWorker/services"
	"github.com/meghk47/FindWorker/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Role     string `json:"role"` // free text, defaults to customer
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthController struct {
	Auth      *services.AuthService
	Sessions  *services.SessionService
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthController(auth *services.AuthService, sessions *services.SessionService, secret string, ttl time.Duration) *AuthController {
	return &AuthController{Auth: auth, Sessions: sessions, JWTSecret: secret, JWTTTL: ttl}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Auth.Register(req.Username, req.Password, req.Phone, req.Role)
	switch err {
	case nil:
	case services.ErrFieldsRequired, services.ErrUsernameTaken:
		resp.BadRequest(c, err.Error())
		return
	default:
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, gin.H{
		"username": user.Username, "role": user.Role, "phone": user.Phone,
	})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Auth.Login(req.Username, req.Password)
	switch err {
	case nil:
	case services.ErrFieldsRequired:
		resp.BadRequest(c, err.Error())
		return
	case services.ErrInvalidCredentials:
		resp.Unauthorized(c, err.Error())
		return
	default:
		resp.ServerError(c, err)
		return
	}

	sess, err := a.Sessions.Open(user)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	token, err := utils.GenerateToken(user.Username, user.Role, sess.Token, a.JWTSecret, a.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user": gin.H{
			"username": user.Username, "role": user.Role, "phone": user.Phone,
		},
		"view": sess.CurrentView,
	})
}

// POST /auth/logout
func (a *AuthController) Logout(c *gin.Context) {
	if err := a.Sessions.Close(utils.CurrentSession(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"loggedOut": true})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Auth.GetProfile(utils.CurrentUsername(c))
	if err != nil {
		resp.BadRequest(c, "user not found")
		return
	}
	resp.OK(c, gin.H{
		"username": user.Username, "role": user.Role, "phone": user.Phone,
	})
}
