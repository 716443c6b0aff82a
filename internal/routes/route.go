package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kitad/staybook/internal/container"
	"github.com/kitad/staybook/internal/handlers"
	"github.com/kitad/staybook/internal/middleware"
	"github.com/kitad/staybook/internal/models"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(c *container.Container) *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{c.Config.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(c.Logger))
	r.Use(middleware.ErrorHandler(c.Logger))
	r.Use(gin.Recovery())

	auth := middleware.AuthMiddleware(c.Config.JWTSecret)

	api := r.Group("/api")
	{
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(200, gin.H{
				"status":  "OK",
				"service": "staybook-api",
			})
		})

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", handlers.Register(c.UserService, c.Config))
			authRoutes.POST("/login", handlers.Login(c.UserService, c.Config))
			authRoutes.GET("/validate-token", auth, handlers.ValidateToken())
			authRoutes.POST("/logout", handlers.Logout())
		}

		userRoutes := api.Group("/users", auth)
		{
			userRoutes.GET("/me", handlers.GetCurrentUser(c.UserService))
			userRoutes.PUT("/me", handlers.UpdateCurrentUser(c.UserService))
		}

		myHotelRoutes := api.Group("/my-hotels", auth)
		{
			myHotelRoutes.POST("/", middleware.RequireRole(models.RoleHotelOwner, models.RoleAdmin), handlers.CreateMyHotel(c.HotelService))
			myHotelRoutes.GET("/", handlers.ListMyHotels(c.HotelService))
			myHotelRoutes.GET("/:id", handlers.GetMyHotel(c.HotelService))
			myHotelRoutes.PUT("/:id", handlers.UpdateMyHotel(c.HotelService))
		}

		hotelRoutes := api.Group("/hotels")
		{
			hotelRoutes.GET("", handlers.SearchHotels(c.HotelService))
			hotelRoutes.GET("/:id", handlers.GetHotel(c.HotelService))

			hotelRoutes.POST("/:id/bookings/payment-intent", auth, handlers.CreatePaymentIntent(c.BookingService))
			hotelRoutes.POST("/:id/bookings", auth, handlers.ConfirmBooking(c.BookingService))
		}

		api.GET("/my-bookings", auth, handlers.ListMyBookings(c.BookingService))

		reviewRoutes := api.Group("/reviews")
		{
			reviewRoutes.GET("/hotel/:hotelId", handlers.ListHotelReviews(c.ReviewService))
			reviewRoutes.POST("", auth, handlers.CreateReview(c.ReviewService))
		}

		messageRoutes := api.Group("/messages", auth)
		{
			messageRoutes.GET("/", handlers.GetInbox(c.MessageService))
			messageRoutes.GET("/unread-count", handlers.GetUnreadCount(c.MessageService))
			messageRoutes.POST("/", handlers.SendMessage(c.MessageService))
			messageRoutes.POST("/booking-notification", handlers.SendBookingNotification(c.MessageService))
			messageRoutes.PUT("/:id/read", handlers.MarkMessageRead(c.MessageService))
			messageRoutes.DELETE("/:id", handlers.DeleteMessage(c.MessageService))
		}

		adminRoutes := api.Group("/admin", auth, middleware.RequireAdmin(c.UserService, c.Config.AdminEmail))
		{
			adminRoutes.GET("/users", handlers.AdminListUsers(c.AdminService))
			adminRoutes.GET("/stats", handlers.AdminStats(c.AdminService))
			adminRoutes.GET("/hotels", handlers.AdminListHotels(c.AdminService))
			adminRoutes.DELETE("/users/:id", handlers.AdminDeleteUser(c.AdminService))
			adminRoutes.PATCH("/users/:id/role", handlers.AdminUpdateUserRole(c.AdminService))
			adminRoutes.DELETE("/hotels/:id", handlers.AdminDeleteHotel(c.AdminService))
			adminRoutes.PUT("/hotels/:id/approve", handlers.AdminApproveHotel(c.AdminService))
		}

		analyticsRoutes := api.Group("/analytics", auth, middleware.RequireRole(models.RoleHotelOwner, models.RoleAdmin))
		{
			analyticsRoutes.GET("/dashboard", handlers.GetDashboard(c.AnalyticsService))
		}
	}

	return r
}
