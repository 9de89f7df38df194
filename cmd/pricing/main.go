package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"smartval/internal/config"
	"smartval/internal/database"
	"smartval/internal/docs"
	"smartval/internal/estimator"
	"smartval/internal/handlers"
	"smartval/internal/logger"
	"smartval/internal/middleware"
	"smartval/internal/services"
	"smartval/internal/validator"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Named("pricing")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnw("failed to close database", "error", err)
		}
	}()

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	predictionService := services.NewPredictionService(dbManager.DB(), estimator.NewMarketModel())
	predictionHandler := handlers.NewPredictionHandler(predictionService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging("pricing"))
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.InstanceName(docs.PricingSwaggerInfo.InstanceName())))

	predictionHandler.RegisterRoutes(router, middleware.APIKeyAuth(cfg.PricingHistoryAPIKey))

	if cfg.PricingHistoryAPIKey == "" {
		log.Warn("PRICING_HISTORY_API_KEY is not set; /history is open")
	}
	log.Infof("Starting SmartVal pricing service on port %s (%s history)", cfg.PricingPort, cfg.DB.Driver)
	return router.Run(":" + cfg.PricingPort)
}
