package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"venuebook/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

var errRateLimited = errors.New("rate limit exceeded")

type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit keys on the client IP and lets requests through when the limiter itself fails.
func RateLimit(limiter RateLimiter, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.FullPath()+"|"+c.ClientIP())
		if err != nil {
			logger.WarnContext(c.Request.Context(), "rate limiter unavailable, allowing request", "error", err.Error())
			c.Next()
			return
		}
		if !allowed {
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", nil)
			return
		}
		c.Next()
	}
}
