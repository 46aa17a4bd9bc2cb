package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pivotchat-backend/pkg/logger"
)

// DefaultRequestTimeout bounds a full request end to end. Longer than the
// worst-case two backend hops with one retry each.
const DefaultRequestTimeout = 30 * time.Second

// Timeout attaches a deadline to each request context and returns 504 when
// the deadline fires before the handler finishes.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		start := time.Now()

		c.Next()

		if ctx.Err() == context.DeadlineExceeded && !c.Writer.Written() {
			logger.Warn("Request timed out",
				zap.Duration("timeout", timeout),
				zap.Duration("duration", time.Since(start)),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  "REQUEST_TIMEOUT",
			})
			c.Abort()
		}
	}
}
