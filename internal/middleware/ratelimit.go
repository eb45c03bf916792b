package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// NewAuthRateLimiter builds the rate limit middleware for the login
// endpoints: 5 requests per minute per client IP, in-memory store.
func NewAuthRateLimiter() gin.HandlerFunc {
	rate, _ := limiter.NewRateFromFormatted("5-M")
	return RateLimit(limiter.New(memory.NewStore(), rate))
}

// RateLimit creates a Gin middleware for rate limiting requests by client IP.
// Applied to the public auth routes to slow down credential guessing.
func RateLimit(limiterInstance *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		context, err := limiterInstance.Get(c.Request.Context(), ip)
		if err != nil {
			GetLoggerFromCtx(c.Request.Context()).Error("Failed to get rate limit context", slog.String("ip", ip), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne du serveur"})
			return
		}

		if context.Reached {
			GetLoggerFromCtx(c.Request.Context()).Warn("Rate limit exceeded", slog.String("ip", ip), slog.Int64("limit", context.Limit))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Trop de requêtes. Veuillez réessayer plus tard."})
			return
		}

		c.Next()
	}
}
