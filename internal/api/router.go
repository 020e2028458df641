package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/forklion/forklion-api/internal/api/handlers"
	apimiddleware "github.com/forklion/forklion-api/internal/api/middleware"
	"github.com/forklion/forklion-api/internal/config"
	"github.com/forklion/forklion-api/internal/metrics"
)

func SetupRouter(cfg *config.Config, version string) *gin.Engine {
	router := gin.New()

	// CloudWatch metrics (no-op outside production)
	cloudwatchClient, _ := metrics.NewClient(context.Background(), cfg.Environment)

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(cloudwatchClient))

	// CORS middleware
	router.Use(apimiddleware.CORS())

	// Health check
	healthHandler := handlers.NewHealthHandler(cfg, version)
	router.GET("/health", healthHandler.HealthCheck)

	// Lion API routes
	v1 := router.Group("/api/v1")
	{
		lionHandler := handlers.NewLionHandler(cfg, cloudwatchClient)
		v1.POST("/lions", lionHandler.Create)
		v1.POST("/lions/render", lionHandler.Render)
		v1.POST("/lions/evolve", lionHandler.Evolve)
	}

	return router
}
