package server

import (
	"context"
	"net/http"
	"time"

	"ptstudio/internal/analytics"
	"ptstudio/internal/auth"
	"ptstudio/internal/blockbooking"
	"ptstudio/internal/booking"
	"ptstudio/internal/calendar"
	"ptstudio/internal/config"
	"ptstudio/internal/credits"
	"ptstudio/internal/errreport"
	"ptstudio/internal/message"
	"ptstudio/internal/notification"
	"ptstudio/internal/pack"
	"ptstudio/internal/programme"
	"ptstudio/internal/referral"
	"ptstudio/internal/slot"
	"ptstudio/internal/user"
	"ptstudio/internal/waitlist"
	"ptstudio/internal/workout"

	"github.com/gin-gonic/gin"
)

type Server struct {
	router  *gin.Engine
	http    *http.Server
	limiter *RateLimiter
	config  *config.Config
}

func New(cfg *config.Config, deps Deps, services *Services) *Server {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	limiter := NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, 3*time.Minute)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestIDMiddleware(),
		RequestLoggingMiddleware(),
		MetricsMiddleware(),
		errreport.Middleware(),
		corsMiddleware(),
	)

	router.GET("/health", Health(deps.DB))
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	userHandler := user.NewHandler(services.Users)
	slotHandler := slot.NewHandler(services.Slots)
	calendarHandler := calendar.NewHandler(services.Slots, cfg.Location())
	bookingHandler := booking.NewHandler(services.Bookings)
	waitlistHandler := waitlist.NewHandler(services.Waitlist)
	blockHandler := blockbooking.NewHandler(services.BlockBookings)
	creditsHandler := credits.NewHandler(services.Credits)
	packHandler := pack.NewHandler(services.Packs)
	referralHandler := referral.NewHandler(services.Referrals)
	notificationHandler := notification.NewHandler(services.Notifications)
	workoutHandler := workout.NewHandler(services.Workouts)
	programmeHandler := programme.NewHandler(services.Programmes)
	analyticsHandler := analytics.NewHandler(services.Analytics)
	messageHandler := message.NewHandler(services.Messages)

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret, services.Revocations)

	public := router.Group("/auth")
	public.Use(limiter.Middleware())
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.Refresh)
	}

	protected := router.Group("/")
	protected.Use(limiter.Middleware(), authMiddleware)
	{
		protected.POST("/auth/sign-out", userHandler.SignOut)
		protected.GET("/auth/session", userHandler.Session)

		protected.GET("/me", userHandler.GetMe)
		protected.PUT("/me", userHandler.UpdateMe)
		protected.GET("/me/client-profile", userHandler.GetClientProfile)
		protected.PUT("/me/client-profile", userHandler.UpdateClientProfile)
		protected.POST("/me/avatar", userHandler.UploadAvatar)

		protected.GET("/slots", slotHandler.List)
		protected.GET("/slots/:id", slotHandler.Get)
		protected.POST("/slots/:id/book", bookingHandler.BookSlot)
		protected.POST("/slots/:id/waitlist", waitlistHandler.Join)
		protected.DELETE("/slots/:id/waitlist", waitlistHandler.Leave)
		protected.GET("/calendar", calendarHandler.Month)

		protected.GET("/bookings", bookingHandler.ListMine)
		protected.POST("/bookings/:id/cancel", bookingHandler.CancelBooking)
		protected.GET("/waitlist", waitlistHandler.ListMine)

		protected.GET("/credits", creditsHandler.GetBalance)
		protected.GET("/credits/transactions", creditsHandler.ListTransactions)
		protected.GET("/packs", packHandler.List)
		protected.POST("/packs/:id/purchase", packHandler.Purchase)
		protected.GET("/payments", packHandler.ListPayments)
		protected.GET("/referrals", referralHandler.List)

		protected.GET("/notifications", notificationHandler.List)
		protected.POST("/notifications/:id/read", notificationHandler.MarkRead)
		protected.POST("/notifications/read-all", notificationHandler.MarkAllRead)

		protected.GET("/exercises", workoutHandler.ListExercises)
		protected.POST("/workouts", workoutHandler.LogWorkout)
		protected.GET("/workouts", workoutHandler.ListWorkouts)
		protected.DELETE("/workouts/:id", workoutHandler.DeleteWorkout)
		protected.GET("/programmes", programmeHandler.ListMine)
		protected.GET("/analytics/progress", analyticsHandler.Progress)
		protected.GET("/analytics/weekly", analyticsHandler.Weekly)

		protected.POST("/messages", messageHandler.Send)
		protected.GET("/messages/threads", messageHandler.Threads)
		protected.GET("/messages/unread", messageHandler.Unread)
		protected.GET("/messages/stream", messageHandler.Stream)
		protected.GET("/messages/conversations/:peer_id", messageHandler.Conversation)
		protected.POST("/messages/conversations/:peer_id/read", messageHandler.MarkRead)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole(auth.RoleAdmin))
	{
		admin.GET("/clients", userHandler.ListClients)
		admin.GET("/clients/:id", userHandler.GetClient)
		admin.POST("/clients/:id/credits", creditsHandler.Adjust)

		admin.POST("/slots", slotHandler.Create)
		admin.PUT("/slots/:id", slotHandler.Update)
		admin.DELETE("/slots/:id", slotHandler.Delete)
		admin.GET("/slots/:id/bookings", bookingHandler.ListBySlot)
		admin.PUT("/bookings/:id/status", bookingHandler.UpdateStatus)
		admin.POST("/bookings/:id/cancel", bookingHandler.AdminCancel)
		admin.GET("/bookings/stats", bookingHandler.Stats)

		admin.POST("/block-bookings", blockHandler.Create)
		admin.GET("/block-bookings", blockHandler.List)
		admin.POST("/block-bookings/:id/generate", blockHandler.Generate)
		admin.DELETE("/block-bookings/:id", blockHandler.Deactivate)

		admin.POST("/packs", packHandler.Create)
		admin.PUT("/packs/:id", packHandler.Update)

		admin.POST("/exercises", workoutHandler.CreateExercise)
		admin.POST("/programmes", programmeHandler.Create)
		admin.GET("/programmes", programmeHandler.List)
		admin.GET("/programmes/:id", programmeHandler.Get)
		admin.POST("/programmes/:id/assign", programmeHandler.Assign)

		if deps.Email != nil {
			admin.POST("/test-email", TestEmail(deps.Email))
		}
	}

	return &Server{
		router:  router,
		limiter: limiter,
		config:  cfg,
		// No WriteTimeout: /messages/stream responses stay open.
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       2 * time.Minute,
		},
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks until the server stops. It returns http.ErrServerClosed after
// Shutdown.
func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.Stop()
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
