package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// Timeout bounds every request with a deadline so that a hung persistence
// call cancels with the request instead of hanging it indefinitely.
func Timeout(seconds int64) gin.HandlerFunc {
	d := time.Duration(seconds) * time.Second
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
