// Package main is the entry point for the clinic front-desk service.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/salman-gigabit/PatientQueueBackend/internal/config"
	"github.com/salman-gigabit/PatientQueueBackend/internal/database"
	"github.com/salman-gigabit/PatientQueueBackend/internal/handlers"
	"github.com/salman-gigabit/PatientQueueBackend/internal/repository"
	"github.com/salman-gigabit/PatientQueueBackend/internal/routes"
	"github.com/salman-gigabit/PatientQueueBackend/internal/service"
	pkgredis "github.com/salman-gigabit/PatientQueueBackend/pkg/redis"
)

// @title Clinic Front-Desk API
// @version 1.0
// @description Staff authentication and patient waiting-queue service
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration; a missing JWT secret aborts here.
	cfg := config.Load()

	// Initialize database. Connection failure is logged but not fatal:
	// requests that need storage will report it per-request.
	db, err := database.Connect(cfg)
	if err != nil {
		log.Printf("database unavailable at startup: %v", err)
	}

	// Initialize Redis. Without it logout revocation is disabled.
	redisClient, err := pkgredis.NewClient(cfg)
	if err != nil {
		log.Printf("redis unavailable, logout revocation disabled: %v", err)
		redisClient = nil
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	patientRepo := repository.NewPatientRepository(db)

	// Initialize services
	jwtService := service.NewJWTService(cfg.JWTSecret, cfg.AccessTokenLifetime)
	authService := service.NewAuthService(userRepo, jwtService, redisClient)
	queueService := service.NewQueueService(patientRepo)

	// Bootstrap the admin account before accepting requests.
	if db != nil {
		if err := authService.EnsureAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Printf("admin bootstrap failed: %v", err)
		}
	}

	// Initialize handlers
	cookies := handlers.NewCookieHelper("", cfg.Environment != "development")
	authHandler := handlers.NewAuthHandler(authService, cookies)
	patientHandler := handlers.NewPatientHandler(queueService)
	healthHandler := handlers.NewHealthHandler()

	// Setup router
	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	routes.Setup(router, cfg, authHandler, patientHandler, healthHandler, jwtService, authService)

	// Start server
	log.Printf("Starting front-desk service on port %s", cfg.Port)
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
