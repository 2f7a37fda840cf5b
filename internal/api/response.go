package api

import (
	"errors"   // Error classification
	"io"       // Empty body detection
	"net/http" // HTTP status codes

	"store_api/internal/middleware" // Request ID lookup
	"store_api/internal/repository" // Repository errors
	"store_api/internal/schema"     // Validation errors

	"github.com/gin-gonic/gin"         // Gin web framework
	"github.com/gin-gonic/gin/binding" // Content type constants
	"github.com/sirupsen/logrus"       // Logging library
)

// resource names a collection in error messages
type resource struct {
	name      string // Lower case, used in "Invalid <name> ID"
	title     string // Capitalized, used in "<Title> not found"
	duplicate string // Message for unique index violations, empty when the collection has none
}

var (
	userResource    = resource{name: "user", title: "User", duplicate: "Email already exists"}
	productResource = resource{name: "product", title: "Product"}
)

// respondOne writes {success: true, data}
func respondOne(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// respondList writes {success: true, count, data}
func respondList[T any](c *gin.Context, data []T) {
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(data), "data": data})
}

// respondFailure writes {success: false, error}
func respondFailure(c *gin.Context, status int, msg any) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

// respondError maps a repository outcome onto the status and envelope for res
func respondError(c *gin.Context, res resource, op string, err error) {
	var verr *schema.ValidationError
	switch {
	case errors.As(err, &verr):
		respondFailure(c, http.StatusBadRequest, verr.Messages) // All messages, field order
	case errors.Is(err, repository.ErrMalformedID):
		respondFailure(c, http.StatusBadRequest, "Invalid "+res.name+" ID")
	case errors.Is(err, repository.ErrNotFound):
		respondFailure(c, http.StatusNotFound, res.title+" not found")
	case errors.Is(err, repository.ErrDuplicateKey) && res.duplicate != "":
		respondFailure(c, http.StatusBadRequest, res.duplicate)
	default:
		logrus.WithFields(logrus.Fields{
			"resource":   res.name,                // Collection
			"op":         op,                      // Operation
			"request_id": middleware.RequestID(c), // Request ID
			"error":      err.Error(),             // Error message
		}).Error("Request failed")
		respondFailure(c, http.StatusInternalServerError, "Server Error")
	}
}

// bindBody decodes a JSON object or a urlencoded form from the request body.
// An empty body is an empty object.
func bindBody(c *gin.Context) (map[string]any, error) {
	if c.ContentType() == binding.MIMEPOSTForm {
		if err := c.Request.ParseForm(); err != nil {
			return nil, &schema.ValidationError{Messages: []string{"Invalid request body"}}
		}
		input := make(map[string]any, len(c.Request.PostForm))
		for key, values := range c.Request.PostForm {
			if len(values) > 0 {
				input[key] = values[0] // First value wins, the schema casts strings
			}
		}
		return input, nil
	}

	input := map[string]any{}
	if err := c.ShouldBindJSON(&input); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, &schema.ValidationError{Messages: []string{"Invalid request body"}}
	}
	return input, nil
}
