package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Logger prints one line per request including request_id when available.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		entry := log.WithFields(log.Fields{
			"module":     "HTTP",
			"request_id": GetRequestID(c),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": float64(latency.Microseconds()) / 1000.0,
			"ip":         c.ClientIP(),
		})
		if c.Writer.Status() >= 500 {
			entry.Error("request failed")
			return
		}
		entry.Info("request served")
	}
}
