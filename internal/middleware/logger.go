package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger logs one line per request: method, path, client, status,
// latency, and the session id when the route is session-scoped.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		sessionID := "-"
		if id, ok := c.Get(ContextSessionID); ok {
			sessionID = id.(string)
		}

		log.Printf("[%s] %s %s %d %v session=%s %s",
			c.Request.Method,
			path,
			c.ClientIP(),
			c.Writer.Status(),
			time.Since(start),
			sessionID,
			c.Errors.String(),
		)
	}
}
