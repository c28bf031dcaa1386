package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestLogger tags every request with an id and writes one access-log
// line when it completes.
func RequestLogger(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header("X-Request-ID", requestID)

	start := time.Now()
	c.Next()

	logrus.WithFields(logrus.Fields{
		"request_id": requestID,
		"method":     c.Request.Method,
		"path":       c.FullPath(),
		"status":     c.Writer.Status(),
		"latency_ms": time.Since(start).Milliseconds(),
	}).Info("request")
}
