package middleware

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/neolalia/wordforge/internal/limiter"
)

// RateLimit caps generation requests per client IP. A limiter outage fails
// open: losing the counter must not take down generation.
func RateLimit(l *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := l.Check(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Printf("Rate limit check failed: %v", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))

		if !result.Allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many generation requests, try again shortly",
			})
			return
		}

		c.Next()
	}
}
