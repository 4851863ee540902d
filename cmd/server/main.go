package main

import (
	"fmt"
	"os"

	"github.com/coursedesk/coursedesk/internal/api"
	"github.com/coursedesk/coursedesk/internal/config"
	"github.com/coursedesk/coursedesk/internal/database"
	"github.com/coursedesk/coursedesk/internal/database/repository"
	"github.com/coursedesk/coursedesk/internal/database/service"
	"github.com/coursedesk/coursedesk/internal/handler"
	"github.com/coursedesk/coursedesk/internal/logger"
	"github.com/coursedesk/coursedesk/internal/middleware"
)

func main() {
	// 1. Config
	cfg := config.LoadConfig()

	// 2. Logger
	appLogger := logger.New(cfg)

	appLogger.Info("🚀 [Go] Starting Courses API...",
		"environment", cfg.AppEnv,
	)

	// 3. Connect to Database
	db, err := database.Connect(cfg, appLogger)
	if err != nil {
		appLogger.Error("❌ Failed to connect to database", "error", err)
		os.Exit(1)
	}

	// 4. Initialize Repositories
	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)

	// 5. Initialize Services
	userService := service.NewUserService(userRepo, appLogger)
	courseService := service.NewCourseService(courseRepo, appLogger)

	// 6. Initialize Handlers & Middleware
	userHandler := handler.NewUserHandler(userService, appLogger)
	courseHandler := handler.NewCourseHandler(courseService, appLogger)
	authMiddleware := middleware.NewAuthMiddleware(userService, appLogger)

	// 7. Initialize Rate Limiter
	rateLimiter, err := middleware.NewRateLimiter(cfg, appLogger)
	if err != nil {
		appLogger.Warn("⚠️ Failed to connect to Redis, using no-op rate limiter", "error", err)
		rateLimiter = middleware.NewNoOpRateLimiter(appLogger)
	}
	defer rateLimiter.Close()

	// 8. Setup Router
	r := api.SetupRouter(cfg, appLogger, userHandler, courseHandler, authMiddleware, rateLimiter)

	// 9. Start HTTP Server
	addr := fmt.Sprintf(":%s", cfg.ApiServicePort)
	appLogger.Info("🌍 [Go] HTTP Server running on port...", "port", addr)
	if err := r.Run(addr); err != nil {
		appLogger.Error("❌ HTTP Server failed to start", "error", err)
		os.Exit(1)
	}
}
