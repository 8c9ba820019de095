package middleware

import (
	"github.com/gin-gonic/gin"

	"calendar-copilot/pkg/response"
)

// SuggestLimit throttles the suggestion pipeline. Every accepted request
// costs one completion-service call, so the limiter protects the upstream
// quota rather than the server itself.
func (m Middleware) SuggestLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.suggestLimiter.Allow() {
			m.l.Warnf(c.Request.Context(), "suggest rate limit exceeded for %s", c.ClientIP())
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
