// Package routes defines HTTP routes for the clinic front-desk service.
package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/salman-gigabit/PatientQueueBackend/internal/config"
	"github.com/salman-gigabit/PatientQueueBackend/internal/handlers"
	"github.com/salman-gigabit/PatientQueueBackend/internal/middleware"
	"github.com/salman-gigabit/PatientQueueBackend/internal/service"
)

// Setup configures all HTTP routes for the application.
func Setup(
	router *gin.Engine,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	patientHandler *handlers.PatientHandler,
	healthHandler *handlers.HealthHandler,
	jwtService service.JWTService,
	authService service.AuthService,
) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	router.Use(middleware.CSRF(cfg.AllowedOrigins))

	router.GET("/health", healthHandler.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	requireAuth := middleware.RequireAuth(jwtService, authService)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", requireAuth, authHandler.Me)
		}

		patients := v1.Group("/patients", requireAuth)
		{
			patients.POST("", patientHandler.Enqueue)
			patients.GET("", patientHandler.ListWaiting)
			patients.GET("/stats", patientHandler.Stats)
			patients.PATCH("/:id/visit", patientHandler.MarkVisited)
		}
	}
}
