package middleware

import (
	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/google/uuid"   // Request identifiers
)

// RequestIDHeader carries the request identifier in both directions
const RequestIDHeader = "X-Request-Id"

const requestIDKey = "requestID"

// RequestIDMiddleware reuses a caller supplied request ID or assigns a new one
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader) // Caller supplied ID, if any
		if id == "" || len(id) > 64 {
			id = uuid.NewString() // Generate a fresh ID
		}
		c.Set(requestIDKey, id)       // Store for handlers and loggers
		c.Header(RequestIDHeader, id) // Echo back to the caller
		c.Next()
	}
}

// RequestID returns the identifier assigned by RequestIDMiddleware, or ""
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
