package middleware

import (
	"net/http" // HTTP handler adapters

	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/go-chi/cors"   // CORS handling
)

// CORSMiddleware applies go-chi/cors to the gin chain. Preflight requests are answered
// directly and never reach the routes.
func CORSMiddleware(origins []string) gin.HandlerFunc {
	h := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	})
	return func(c *gin.Context) {
		passed := false // Set when cors hands the request on
		h.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			passed = true
			c.Request = r
			c.Next()
		})).ServeHTTP(c.Writer, c.Request)
		if !passed {
			c.Abort() // Preflight already answered
		}
	}
}
