package routes

import (
	"github.com/meghk47/FindWorker/configs"
	"github.com/meghk47/FindWorker/controllers"
	"github.com/meghk47/FindWorker/middlewares"
	"github.com/meghk47/FindWorker/repository"
	"github.com/meghk47/FindWorker/services"
	"github.com/meghk47/FindWorker/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	workerRepo := repository.NewWorkerRepository(db)
	requestRepo := repository.NewBookingRequestRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo)
	sessionSvc := services.NewSessionService(sessionRepo)
	workerSvc := services.NewWorkerService(workerRepo)
	bookingSvc := services.NewBookingService(workerRepo, requestRepo)
	feedbackSvc := services.NewFeedbackService(feedbackRepo)

	// Admin event feed
	hub := ws.NewRequestHub()
	go hub.Run()

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, sessionSvc, cfg.JWTSecret, cfg.JWTTTL)
	sessionCtrl := controllers.NewSessionController(sessionSvc)
	workerCtrl := controllers.NewWorkerController(workerSvc)
	bookingCtrl := controllers.NewBookingController(bookingSvc, hub)
	adminCtrl := controllers.NewAdminController(bookingSvc, workerSvc, hub)
	feedbackCtrl := controllers.NewFeedbackController(feedbackSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.POST("/logout", authCtrl.Logout)
		aAuth.GET("/me", authCtrl.Me)
	}

	// Session / navigation
	session := r.Group("/session", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		session.GET("", sessionCtrl.Current)
		session.PATCH("/language", sessionCtrl.SetLanguage)
		session.PATCH("/view", sessionCtrl.SwitchView)
	}

	// Customer (any logged-in user; only "admin" is a special role)
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.GET("/workers", workerCtrl.List)
		u.POST("/workers/:id/book", bookingCtrl.Book)
		u.POST("/workers/:id/pay", bookingCtrl.Pay)
		u.GET("/bookings", bookingCtrl.ListMine)
		u.POST("/feedback", feedbackCtrl.Submit)
	}

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/requests", adminCtrl.Requests)
		admin.PATCH("/requests/:id/accept", adminCtrl.Accept)
		admin.PATCH("/requests/:id/reject", adminCtrl.Reject)
		admin.POST("/workers", adminCtrl.AddWorker)
	}

	// Live request feed for the admin dashboard
	r.GET("/ws/requests", middlewares.WSAuthMiddleware(cfg.JWTSecret, "admin"), hub.HandleWebSocket)
}
