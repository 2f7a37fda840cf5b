package api

import (
	"net/http" // HTTP status codes

	"store_api/internal/domain"     // Importing domain models
	"store_api/internal/metrics"    // Prometheus collectors
	"store_api/internal/repository" // Product persistence
	"store_api/internal/utils"      // Cache

	"github.com/gin-gonic/gin" // Gin web framework
)

// productView is a product as read back: createdBy holds the populated creator or null
type productView struct {
	*domain.Product
	CreatedBy *domain.Creator `json:"createdBy"`
}

func viewOf(p *domain.Product) productView {
	return productView{Product: p, CreatedBy: p.Creator}
}

// ListProductsHandler returns every product with its creator populated
func ListProductsHandler(products repository.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.List(c.Request.Context())
		if err != nil {
			respondError(c, productResource, "list", err)
			return
		}
		views := make([]productView, len(list))
		for i := range list {
			views[i] = viewOf(&list[i])
		}
		respondList(c, views)
	}
}

// CreateProductHandler validates the body and stores a new product. createdBy is echoed as given.
func CreateProductHandler(products repository.Products, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		input, err := bindBody(c)
		if err != nil {
			respondError(c, productResource, "create", err)
			return
		}
		product, err := products.Create(c.Request.Context(), input)
		if err != nil {
			respondError(c, productResource, "create", err)
			return
		}
		m.DocumentCreated(productResource.name) // Count created products
		respondOne(c, http.StatusCreated, product)
	}
}

// GetProductHandler returns one product with its creator populated
func GetProductHandler(products repository.Products, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")                // Path identifier
		key := utils.ProductKeyPrefix + id // Cache key
		var cached productView
		if cache.Get(c.Request.Context(), key, &cached) {
			respondOne(c, http.StatusOK, cached) // Cache hit
			return
		}
		product, err := products.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, productResource, "get", err)
			return
		}
		view := viewOf(product)
		cache.Set(c.Request.Context(), key, view)
		respondOne(c, http.StatusOK, view)
	}
}
