package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger prints one line per request including request_id when available.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		log.Printf("[HTTP] request_id=%s method=%s path=%s query=%q status=%d bytes=%d latency_ms=%.3f ip=%s",
			GetRequestID(c),
			c.Request.Method,
			c.Request.URL.Path,
			c.Request.URL.RawQuery,
			c.Writer.Status(),
			c.Writer.Size(),
			float64(latency.Microseconds())/1000.0,
			c.ClientIP(),
		)
	}
}
