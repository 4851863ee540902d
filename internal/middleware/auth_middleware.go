package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursedesk/coursedesk/internal/database/models"
	"github.com/coursedesk/coursedesk/internal/database/service"
)

// CurrentUserKey is the context key under which the authenticated user is stored.
const CurrentUserKey = "currentUser"

// AuthMiddleware handles HTTP Basic authentication
type AuthMiddleware struct {
	service service.UserService
	logger  *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware instance
func NewAuthMiddleware(service service.UserService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		service: service,
		logger:  logger,
	}
}

// RequireAuth resolves Basic credentials against the stored password hash
// and sets the authenticated user in the context. Any failure aborts the
// request with 401 before handler code runs.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		email, password, ok := c.Request.BasicAuth()
		if !ok {
			m.logger.Warn("⚠️ [Middleware] Missing or malformed Basic credentials")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access Denied"})
			return
		}

		user, err := m.service.Authenticate(c.Request.Context(), email, password)
		if err != nil {
			m.logger.Warn("⚠️ [Middleware] Authentication failed", "email", email)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access Denied"})
			return
		}

		c.Set(CurrentUserKey, user)
		m.logger.Debug("✅ [Middleware] User authenticated", "user_id", user.ID)

		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by RequireAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
