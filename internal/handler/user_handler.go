package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursedesk/coursedesk/internal/database/service"
	"github.com/coursedesk/coursedesk/internal/middleware"
	"github.com/coursedesk/coursedesk/internal/validation"
)

// UserHandler handles HTTP requests for user registration and profile reads
type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(service service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// CreateUserRequest carries the registration fields. Rules are evaluated
// in declaration order and every failure is reported.
type CreateUserRequest struct {
	FirstName    string `json:"firstName" validate:"notblank"`
	LastName     string `json:"lastName" validate:"notblank"`
	EmailAddress string `json:"emailAddress" validate:"notblank,email"`
	Password     string `json:"password" validate:"notblank"`
}

// GetUser handles GET /api/users - returns the authenticated user's profile
func (h *UserHandler) GetUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.logger.Error("❌ [UserHandler] Authenticated user not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Access Denied"})
		return
	}

	c.JSON(http.StatusOK, user.Profile())
}

// CreateUser handles POST /api/users - registers a new account
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("⚠️ [UserHandler] Invalid registration body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if messages := validation.Messages(&req); len(messages) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": messages})
		return
	}

	_, err := h.service.Register(c.Request.Context(), req.FirstName, req.LastName, req.EmailAddress, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"message": "The email address you entered is already in use"})
			return
		}
		h.logger.Error("❌ [UserHandler] Failed to register user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "There was a problem with your request"})
		return
	}

	c.Header("Location", "/")
	c.Status(http.StatusCreated)
}
