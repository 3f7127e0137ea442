// Package main is the entry point for the Portfolio API
package main

import (
	"fmt"
	"log"

	"github.com/labstack/echo/v4"

	"github.com/qwest/portfolioapi/config"
	"github.com/qwest/portfolioapi/database"
	"github.com/qwest/portfolioapi/services"
	"github.com/qwest/portfolioapi/shared/middleware"
	"github.com/qwest/portfolioapi/shared/zaplogger"
)

func main() {
	// Setup logger
	defer zaplogger.Sync()

	// startUpMessage
	zaplogger.Info(config.SingleLine)
	zaplogger.Info("Portfolio API")

	// Load configuration
	cfg, err := config.Get()
	if err != nil {
		zaplogger.Fatal("failed to load configuration", zaplogger.Fields{"error": err})
	}
	zaplogger.Info("  * configuration loaded")

	if cfg.AdminPassword == "" {
		zaplogger.Warn("PF_API_ADMIN_PASSWORD is not set: admin login is disabled")
	}
	if cfg.SessionSecret == "" {
		zaplogger.Warn("PF_API_SESSION_SECRET is not set: using the development fallback secret")
	}

	// Create a new Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Setup middleware
	middleware.SetupLoggerMiddleware(e)

	// Connect to Postgres
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}

	// Connect Redis
	redisClient, err := database.ConnectRedis(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Setup routes
	itemService, err := setupRoutes(e, cfg, db, redisClient)
	if err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	// Setup and start cron jobs
	cronService := services.NewCronService(cfg, itemService)
	cronService.Start()

	// Start the server
	startServer(e, cfg)
}

// startServer starts the Echo server on the specified port
func startServer(e *echo.Echo, cfg *config.Config) {
	port := cfg.ServerPort
	if port == "" {
		port = "3080"
	}
	startupMessage := fmt.Sprintf("%s %s Server [:%s] started", cfg.AppName, cfg.AppVersion, port)

	zaplogger.Info(config.SingleLine)
	zaplogger.Info(startupMessage)
	zaplogger.Info(config.SingleLine)
	e.Logger.Fatal(e.Start(":" + port))
}
