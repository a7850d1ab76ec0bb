package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prajith-ops/Stayelo/internal/container"
	"github.com/prajith-ops/Stayelo/internal/handlers"
	"github.com/prajith-ops/Stayelo/internal/middleware"
	"github.com/prajith-ops/Stayelo/internal/ws"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	cfg := container.Config

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// Uploaded profile pictures
	r.Static("/uploads", cfg.UploadDir)

	// Real-time chat channel
	r.GET("/ws", ws.Serve(container.Hub, container.Logger))

	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "stayelo-api",
			})
		})
	}

	auth := api.Group("/auth")
	{
		auth.POST("/signup", handlers.Signup(container.UserService))
		auth.POST("/login", handlers.Login(container.UserService))
		auth.POST("/google-login", handlers.GoogleLogin(container.UserService))
		auth.POST("/forgot-password", handlers.ForgotPassword(container.UserService))
		auth.POST("/reset-password", handlers.ResetPassword(container.UserService))
	}

	authRequired := middleware.AuthMiddleware(cfg.JWTSecret, container.Logger)
	adminOnly := middleware.AdminOnly()

	authProtected := auth.Group("/")
	authProtected.Use(authRequired)
	{
		authProtected.GET("/profile", handlers.GetProfile(container.UserService))
		authProtected.PUT("/update-profile", handlers.UpdateProfile(container.UserService, cfg.UploadDir))

		customers := authProtected.Group("/customers")
		customers.Use(adminOnly)
		{
			customers.GET("", handlers.ListCustomers(container.UserService))
			customers.PUT("/:id", handlers.UpdateCustomerStatus(container.UserService))
			customers.DELETE("/:id", handlers.DeleteCustomer(container.UserService))
		}
	}

	rooms := api.Group("/rooms")
	{
		rooms.GET("/public", handlers.PublicRooms(container.RoomService))
		rooms.GET("/search", handlers.SearchRooms(container.RoomService))

		protected := rooms.Group("/")
		protected.Use(authRequired)
		{
			protected.GET("", handlers.ListRooms(container.RoomService))
			protected.GET("/:id", handlers.GetRoom(container.RoomService))
			protected.POST("", adminOnly, handlers.CreateRoom(container.RoomService))
			protected.PUT("/:id", adminOnly, handlers.UpdateRoom(container.RoomService))
			protected.DELETE("/:id", adminOnly, handlers.DeleteRoom(container.RoomService))
		}
	}

	bookings := api.Group("/bookings")
	bookings.Use(authRequired)
	{
		bookings.POST("", handlers.CreateBooking(container.BookingService))
		bookings.GET("", adminOnly, handlers.ListBookings(container.BookingService))
		bookings.GET("/trends", adminOnly, handlers.BookingTrends(container.BookingService))
		bookings.POST("/verify-payment", handlers.VerifyPayment(container.PaymentService))
		bookings.GET("/user/:userId", handlers.ListUserBookings(container.BookingService))
		bookings.GET("/:id", handlers.GetBooking(container.BookingService))
		bookings.PUT("/:id", adminOnly, handlers.UpdateBooking(container.BookingService))
		bookings.PUT("/:id/cancel", handlers.CancelBooking(container.BookingService))
		bookings.DELETE("/:id", adminOnly, handlers.DeleteBooking(container.BookingService))
	}

	payment := api.Group("/payment")
	payment.Use(authRequired)
	{
		payment.POST("/create-order", handlers.CreateOrder(container.PaymentService))
	}

	recommendations := api.Group("/recommendations")
	recommendations.Use(authRequired)
	{
		recommendations.GET("", handlers.Recommendations(container.RecommendationService))
	}

	admin := api.Group("/admin")
	admin.Use(authRequired, adminOnly)
	{
		admin.GET("/stats", handlers.AdminStats(container.StatsService))
	}

	return r
}
