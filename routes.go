// Package main is the entry point for the Portfolio API
package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/qwest/portfolioapi/api/admin"
	"github.com/qwest/portfolioapi/api/gallery"
	"github.com/qwest/portfolioapi/api/item"
	"github.com/qwest/portfolioapi/api/session"
	"github.com/qwest/portfolioapi/api/upload"
	"github.com/qwest/portfolioapi/config"
	"github.com/qwest/portfolioapi/shared/auditlog"
	"github.com/qwest/portfolioapi/shared/middleware"
	"github.com/qwest/portfolioapi/shared/response"
	"github.com/qwest/portfolioapi/web"
)

// setupRoutes configures the routes and wires the services together.
// It returns the item service so main can hand it to the cron jobs.
func setupRoutes(e *echo.Echo, cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*item.Service, error) {
	audit, err := auditlog.New(db)
	if err != nil {
		return nil, err
	}

	sessionService := session.NewService(cfg.SessionSecret, cfg.AdminPassword)
	itemService := item.NewService(db, redisClient, audit)

	blobStore, err := upload.NewS3Store(cfg)
	if err != nil {
		return nil, err
	}
	uploadService := upload.NewService(blobStore, cfg.S3PublicBaseURL)

	webHandler, err := web.NewHandler(itemService, cfg.AppName)
	if err != nil {
		return nil, err
	}

	// Public pages
	e.GET("/", webHandler.Gallery)
	e.GET("/items/:id", webHandler.ItemDetail)
	e.GET("/static/site.css", webHandler.Static)

	// Public API
	api := e.Group("/api")
	api.GET("/", indexRoute)
	api.GET("/items", item.NewHandler(itemService).GetItems)
	api.GET("/gallery", gallery.NewHandler(itemService).GetGallery)

	// Upload verifies the session cookie itself; it lives outside the
	// admin prefix so the gate does not cover it.
	uploadHandler := upload.NewHandler(uploadService, sessionService)
	api.POST("/upload", uploadHandler.Upload)

	// Admin routes behind the gate; the login page stays reachable.
	sessionHandler := session.NewHandler(sessionService, cfg.IsProduction(), audit)
	adminHandler := admin.NewHandler(itemService)

	adminGroup := e.Group("/admin")
	adminGroup.Use(middleware.AdminGate(sessionService))
	adminGroup.GET("/login", webHandler.AdminLogin)
	adminGroup.POST("/login", sessionHandler.Login)
	adminGroup.POST("/logout", sessionHandler.Logout)
	adminGroup.GET("", webHandler.AdminPanel)
	adminGroup.POST("/items", adminHandler.CreateItem)
	adminGroup.POST("/items/:id", adminHandler.UpdateItem)
	adminGroup.POST("/items/:id/delete", adminHandler.DeleteItem)

	return itemService, nil
}

// indexRoute reports the API name and version
func indexRoute(c echo.Context) error {
	cfg, err := config.Get()
	if err != nil {
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", "configuration unavailable")
	}
	return response.SuccessResponse(c, cfg.AppName+" "+cfg.AppVersion)
}
