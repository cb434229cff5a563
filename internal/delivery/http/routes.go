package http

import (
	"github.com/dermalens/backend/config"
	"github.com/gin-gonic/gin"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.POST("/similar", handler.SimilarProducts)
			products.POST("/compatible", handler.CompatibleProducts)
			products.POST("/compare", handler.CompareProducts)
			products.GET("/:id/time-of-day", handler.TimeOfDay)
		}

		v1.POST("/reviews/similarity", handler.ReviewSimilarity)
		v1.POST("/ingredients/check", handler.CheckIngredients)
	}

	return router
}
