package api

import (
	"net/http" // HTTP status codes

	"store_api/internal/domain"     // Importing domain models
	"store_api/internal/metrics"    // Prometheus collectors
	"store_api/internal/repository" // User persistence
	"store_api/internal/utils"      // Cache

	"github.com/gin-gonic/gin" // Gin web framework
)

// ListUsersHandler returns every user without passwords
func ListUsersHandler(users repository.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := users.List(c.Request.Context())
		if err != nil {
			respondError(c, userResource, "list", err)
			return
		}
		respondList(c, list)
	}
}

// CreateUserHandler validates the body and stores a new user
func CreateUserHandler(users repository.Users, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		input, err := bindBody(c)
		if err != nil {
			respondError(c, userResource, "create", err)
			return
		}
		user, err := users.Create(c.Request.Context(), input)
		if err != nil {
			respondError(c, userResource, "create", err)
			return
		}
		m.DocumentCreated(userResource.name) // Count created users
		respondOne(c, http.StatusCreated, user)
	}
}

// GetUserHandler returns one user, served from cache when possible
func GetUserHandler(users repository.Users, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")             // Path identifier
		key := utils.UserKeyPrefix + id // Cache key
		var cached domain.User
		if cache.Get(c.Request.Context(), key, &cached) {
			respondOne(c, http.StatusOK, cached) // Cache hit
			return
		}
		user, err := users.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, userResource, "get", err)
			return
		}
		cache.Set(c.Request.Context(), key, user) // Users never change once created
		respondOne(c, http.StatusOK, user)
	}
}
