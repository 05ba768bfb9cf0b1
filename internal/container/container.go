package container

import (
	"log/slog"

	"github.com/joshua-takyi/tourbay/internal/backend"
	"github.com/joshua-takyi/tourbay/internal/models"
	"github.com/joshua-takyi/tourbay/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger        *slog.Logger
	BackendClient *backend.Client
	MongoDBClient *mongo.Client

	BookingService        *services.BookingService
	RecommendationService *services.RecommendationService
	AnalyticsService      *services.AnalyticsService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	backendClient *backend.Client,
	mongoDBClient *mongo.Client,
) *Container {
	// Initialize repositories
	views := models.MongodbNewRepo(mongoDBClient)

	bookingService := services.NewBookingService(backendClient)
	recommendationService := services.NewRecommendationService(backendClient, views, logger)
	analyticsService := services.NewAnalyticsService(backendClient, views, logger)

	return &Container{
		Logger:                logger,
		BackendClient:         backendClient,
		MongoDBClient:         mongoDBClient,
		BookingService:        bookingService,
		RecommendationService: recommendationService,
		AnalyticsService:      analyticsService,
	}
}
