package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/salesrank/salesrank-api/internal/application/service"
	"github.com/salesrank/salesrank-api/internal/config"
	"github.com/salesrank/salesrank-api/internal/presentation/http/handler"
	"github.com/salesrank/salesrank-api/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize services
	performanceService := service.NewPerformanceService()

	// Initialize handlers
	handlers := &routes.Handlers{
		Report: handler.NewReportHandler(performanceService, cfg.Report),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{Cfg: cfg})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
