package container

import (
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/kitad/staybook/internal/config"
	"github.com/kitad/staybook/internal/models"
	"github.com/kitad/staybook/internal/payments"
	"github.com/kitad/staybook/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger        *slog.Logger
	Config        *config.Config
	Cloudinary    *cloudinary.Cloudinary
	MongoDBClient *mongo.Client

	UserService      *services.UserService
	HotelService     *services.HotelService
	BookingService   *services.BookingService
	ReviewService    *services.ReviewService
	MessageService   *services.MessageService
	AdminService     *services.AdminService
	AnalyticsService *services.AnalyticsService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cfg *config.Config,
	cld *cloudinary.Cloudinary,
	mongoDBClient *mongo.Client,
) *Container {
	// Initialize repositories
	repo := models.MongodbNewRepo(mongoDBClient, cfg.MongoDBDatabase)
	provider := payments.NewStripeProvider(cfg.StripeAPIKey)

	userService := services.NewUserService(repo)
	hotelService := services.NewHotelService(repo, cld)
	bookingService := services.NewBookingService(repo, repo, repo, provider)
	reviewService := services.NewReviewService(repo, repo, repo)
	messageService := services.NewMessageService(repo, repo)
	adminService := services.NewAdminService(repo, repo)
	analyticsService := services.NewAnalyticsService(repo, repo)

	return &Container{
		Logger:           logger,
		Config:           cfg,
		Cloudinary:       cld,
		MongoDBClient:    mongoDBClient,
		UserService:      userService,
		HotelService:     hotelService,
		BookingService:   bookingService,
		ReviewService:    reviewService,
		MessageService:   messageService,
		AdminService:     adminService,
		AnalyticsService: analyticsService,
	}
}
