package api

import (
	"context"  // Reset context
	"net/http" // HTTP status codes

	"store_api/internal/metrics"    // Prometheus collectors
	"store_api/internal/middleware" // Custom middleware
	"store_api/internal/repository" // Persistence
	"store_api/internal/utils"      // Cache

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// WelcomeMessage is served on GET /
const WelcomeMessage = "Welcome to Node.js MongoDB API"

// Deps are the collaborators the router is built from. Cache, Metrics and Limiter may be nil.
type Deps struct {
	Users       repository.Users
	Products    repository.Products
	Cache       *utils.Cache
	Metrics     *metrics.Metrics
	Limiter     *middleware.RateLimiter
	CORSOrigins []string
	Dev         bool
}

// Reset empties both collections and the document cache
func (d Deps) Reset(ctx context.Context) error {
	if err := d.Products.DeleteAll(ctx); err != nil {
		return err
	}
	if err := d.Users.DeleteAll(ctx); err != nil {
		return err
	}
	return d.Cache.Purge(ctx)
}

// NewRouter wires middleware and routes
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()                  // Gin router instance
	r.RedirectTrailingSlash = false // "/api/users/" is served, not redirected

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	if d.Dev {
		r.Use(gin.Logger()) // Colored access log in development
	}
	r.Use(
		middleware.RequestIDMiddleware(),        // Assign X-Request-Id
		middleware.RequestLoggerMiddleware(),    // Log every request
		middleware.MetricsMiddleware(d.Metrics), // Latency histogram, outside recovery
		middleware.RecoveryMiddleware(d.Dev),    // Panic boundary
	)
	if len(d.CORSOrigins) > 0 {
		r.Use(middleware.CORSMiddleware(d.CORSOrigins)) // Cross-origin requests
	}
	if d.Limiter != nil {
		r.Use(d.Limiter.Middleware()) // Per-IP rate limiting
	}

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": WelcomeMessage})
	})
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler())) // Prometheus scrape endpoint
	}

	users := r.Group("/api/users")
	handle(users, http.MethodGet, "", ListUsersHandler(d.Users))              // List users
	handle(users, http.MethodPost, "", CreateUserHandler(d.Users, d.Metrics)) // Create user
	handle(users, http.MethodGet, "/:id", GetUserHandler(d.Users, d.Cache))   // Get user

	products := r.Group("/api/products")
	handle(products, http.MethodGet, "", ListProductsHandler(d.Products))              // List products
	handle(products, http.MethodPost, "", CreateProductHandler(d.Products, d.Metrics)) // Create product
	handle(products, http.MethodGet, "/:id", GetProductHandler(d.Products, d.Cache))   // Get product

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
	})
	return r
}

// handle registers path with and without a trailing slash
func handle(g *gin.RouterGroup, method, path string, h gin.HandlerFunc) {
	g.Handle(method, path, h)
	g.Handle(method, path+"/", h)
}
