package middleware

import (
	"time" // Request timestamps

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// RequestLoggerMiddleware logs method, URL and arrival time of every request
func RequestLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now().UTC().Format(time.RFC3339Nano) // Arrival time
		url := c.Request.URL.RequestURI()                // Path with query string
		logrus.WithFields(logrus.Fields{
			"method":     c.Request.Method, // HTTP method
			"path":       url,              // Requested URL
			"request_id": RequestID(c),     // Request ID
		}).Infof("Middleware logger : %s | %s %s", now, c.Request.Method, url)
		c.Next()
	}
}
