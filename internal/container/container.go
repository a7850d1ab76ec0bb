package container

import (
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/prajith-ops/Stayelo/internal/config"
	"github.com/prajith-ops/Stayelo/internal/models"
	"github.com/prajith-ops/Stayelo/internal/services"
	"github.com/prajith-ops/Stayelo/internal/ws"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger     *slog.Logger
	Config     *config.Config
	Cloudinary *cloudinary.Cloudinary
	// Database client
	MongoDBClient *mongo.Client

	UserService           *services.UserService
	RoomService           *services.RoomService
	BookingService        *services.BookingService
	PaymentService        *services.PaymentService
	RecommendationService *services.RecommendationService
	ChatService           *services.ChatService
	StatsService          *services.StatsService

	Hub *ws.Hub
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cfg *config.Config,
	cld *cloudinary.Cloudinary,
	mongoDBClient *mongo.Client,
) *Container {
	// Initialize repositories
	models.DbName = cfg.MongoDBName
	repo := models.MongodbNewRepo(mongoDBClient)

	userService := services.NewUserService(repo, cfg.JWTSecret, cfg.GoogleClientID)
	roomService := services.NewRoomService(repo, cld)
	bookingService := services.NewBookingService(repo, repo)
	gateway := services.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	paymentService := services.NewPaymentService(gateway, bookingService)
	recommendationService := services.NewRecommendationService(repo, repo)
	chatService := services.NewChatService(repo)
	statsService := services.NewStatsService(repo, repo, repo)

	hub := ws.NewHub(chatService, logger)

	return &Container{
		Logger:                logger,
		Config:                cfg,
		Cloudinary:            cld,
		MongoDBClient:         mongoDBClient,
		UserService:           userService,
		RoomService:           roomService,
		BookingService:        bookingService,
		PaymentService:        paymentService,
		RecommendationService: recommendationService,
		ChatService:           chatService,
		StatsService:          statsService,
		Hub:                   hub,
	}
}
