package middleware

import (
	"fmt"      // Panic value formatting
	"io"       // Discarding gin's own panic output
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// RecoveryMiddleware turns a panic into 500 {error, message}. The panic detail is only
// exposed when dev is true.
func RecoveryMiddleware(dev bool) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, rec any) {
		detail := fmt.Sprint(rec) // Panic value as text
		logrus.WithFields(logrus.Fields{
			"method":     c.Request.Method,   // HTTP method
			"path":       c.Request.URL.Path, // Requested path
			"request_id": RequestID(c),       // Request ID
			"panic":      detail,             // Panic value
		}).Error("Unhandled panic")
		message := "Internal Server Error" // Production message
		if dev {
			message = detail // Development shows the cause
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":   "Something went wrong",
			"message": message,
		})
	})
}
