package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// LoggingMiddleware 日志中间件
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		url := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			url += "?" + raw
		}

		log.Printf("%s %s | %d | %v | %s",
			c.Request.Method,
			url,
			c.Writer.Status(),
			time.Since(start),
			c.ClientIP(),
		)
	}
}
