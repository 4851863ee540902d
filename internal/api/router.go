package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/coursedesk/coursedesk/internal/config"
	"github.com/coursedesk/coursedesk/internal/handler"
	"github.com/coursedesk/coursedesk/internal/middleware"
)

func SetupRouter(
	cfg *config.Config,
	logger *slog.Logger,
	userHandler *handler.UserHandler,
	courseHandler *handler.CourseHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter middleware.RateLimiter,
) *gin.Engine {
	r := gin.New()
	r.SetTrustedProxies(nil)

	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.ErrorHandler(cfg, logger))
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	limitWrites := middleware.LimitWrites(rateLimiter, logger)

	// Friendly greeting on the root route
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Welcome to the REST API project!"})
	})

	api := r.Group("/api")
	{
		// Users
		api.GET("/users", authMiddleware.RequireAuth(), userHandler.GetUser)
		api.POST("/users", limitWrites, userHandler.CreateUser)

		// Courses (reads are public, writes require the owner)
		api.GET("/courses", courseHandler.ListCourses)
		api.GET("/courses/:id", courseHandler.GetCourse)
		api.POST("/courses", limitWrites, authMiddleware.RequireAuth(), courseHandler.CreateCourse)
		api.PUT("/courses/:id", limitWrites, authMiddleware.RequireAuth(), courseHandler.UpdateCourse)
		api.DELETE("/courses/:id", limitWrites, authMiddleware.RequireAuth(), courseHandler.DeleteCourse)
	}

	// 404 for anything that did not match a route
	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"message": "Route Not Found"})
	})

	return r
}
