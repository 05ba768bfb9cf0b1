package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/tourbay/internal/container"
	"github.com/joshua-takyi/tourbay/internal/handlers"
	"github.com/joshua-takyi/tourbay/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID", "X-Session-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// API version 1
	v1 := r.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "tourbay-api",
			})
		})
	}

	// Browse and recommendation routes work without a session; a valid
	// token upgrades them to the personalized tier.
	browse := v1.Group("/")
	browse.Use(middleware.OptionalAuth(container.Logger))
	{
		browse.GET("/recommendations/spots", handlers.RecommendSpots(container.RecommendationService))
		browse.GET("/recommendations/packages", handlers.RecommendPackages(container.RecommendationService))
		browse.GET("/spots/trending", handlers.TrendingSpots(container.RecommendationService))
		browse.GET("/spots/:id/similar", handlers.SimilarSpots(container.RecommendationService))
		browse.POST("/spots/:id/views", handlers.TrackSpotView(container.AnalyticsService))
		browse.GET("/packages/:id/quote", handlers.BookingQuote(container.BookingService))
	}

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(container.Logger))

	bookingRoutes := protected.Group("/bookings")
	{
		bookingRoutes.POST("/", handlers.CreateBooking(container.BookingService))
		bookingRoutes.GET("/", handlers.ListUserBookings(container.BookingService))
		bookingRoutes.POST("/:id/cancel", handlers.CancelBooking(container.BookingService))
	}

	ratingRoutes := protected.Group("/ratings")
	{
		ratingRoutes.POST("/", handlers.SubmitRating(container.BookingService))
	}

	analyticsRoutes := protected.Group("/")
	{
		analyticsRoutes.GET("/analytics/company", handlers.CompanyAnalytics(container.AnalyticsService))
		analyticsRoutes.GET("/companies/:id/view-stats", handlers.CompanyViewStats(container.AnalyticsService))
	}

	return r
}
