package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"smartval/internal/config"
	_ "smartval/internal/docs" // Import swagger docs
	"smartval/internal/handlers"
	"smartval/internal/logger"
	"smartval/internal/middleware"
	"smartval/internal/pricing"
	"smartval/internal/services"
	"smartval/internal/validator"
)

// @title           SmartVal API
// @version         1.0
// @description     SmartVal values used assets: a remote resale price plus a five year depreciation projection.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	validator.Register()

	client := pricing.NewClient(cfg.PricingURL, cfg.PricingAPIKey, &http.Client{Timeout: cfg.PricingTimeout})
	valuationService := services.NewValuationService(client, time.Now, cfg.MaxImageBytes)
	valuationHandler := handlers.NewValuationHandler(valuationService, cfg.MaxImageBytes)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging("api"))
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	valuationHandler.RegisterRoutes(router.Group("/api/v1"))

	log.Infof("Starting SmartVal API on port %s (pricing service at %s)", cfg.Port, cfg.PricingURL)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
	return router.Run(":" + cfg.Port)
}
