package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursedesk/coursedesk/internal/config"
)

// ErrorHandler is the global error responder. Handlers normally write their
// own responses; anything that escapes to c.Errors (including recovered
// panics) comes out here as {message, error: {}} with the written status,
// 500 by default. Error detail is logged only when the operator enables it.
func ErrorHandler(cfg *config.Config, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				if cfg.EnableGlobalErrorLogging {
					logger.Error("❌ [ErrorHandler] Panic recovered", "panic", r)
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"message": "There was a problem with your request",
					"error":   gin.H{},
				})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		if cfg.EnableGlobalErrorLogging {
			for _, e := range c.Errors {
				logger.Error("❌ [ErrorHandler] Unhandled error", "error", e.Err)
			}
		}

		if c.Writer.Written() {
			return
		}

		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			status = http.StatusInternalServerError
		}

		c.JSON(status, gin.H{
			"message": c.Errors.Last().Error(),
			"error":   gin.H{},
		})
	}
}
