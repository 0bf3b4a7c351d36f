package router

import (
	"log"

	"github.com/habitpal/backend/internal/handlers"
	"github.com/habitpal/backend/internal/middleware"
	"github.com/habitpal/backend/internal/models"
	"github.com/habitpal/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Habit{},
		&models.HabitCompletion{},
		&models.Friend{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	habitRepo := repositories.NewPostgresHabitRepository(db)
	friendshipRepo := repositories.NewPostgresFriendshipRepository(db)

	// --- Unprotected routes for authentication ---
	authHandler := handlers.NewAuthHandler(userRepo)
	authHandler.RegisterAuthRoutes(e.Group("/api"))

	// --- Protected routes (require a valid session cookie) ---
	api := e.Group("/api")
	api.Use(middleware.SessionAuthMiddleware())

	api.GET("/user", authHandler.CurrentUser)

	habitHandler := handlers.NewHabitHandler(habitRepo)
	habitHandler.RegisterHabitRoutes(api)

	friendshipHandler := handlers.NewFriendshipHandler(friendshipRepo, userRepo)
	friendshipHandler.RegisterFriendshipRoutes(api)

	userHandler := handlers.NewUserHandler(userRepo, habitRepo, friendshipRepo)
	userHandler.RegisterUserRoutes(api)

	leaderboardHandler := handlers.NewLeaderboardHandler(habitRepo, friendshipRepo)
	leaderboardHandler.RegisterLeaderboardRoutes(api)
}
