package repository

import (
	"context" // Context for database operations
	"errors"  // Error classification
	"fmt"     // Error wrapping

	"store_api/internal/domain" // Importing domain models
	"store_api/internal/schema" // Input validation

	"github.com/google/uuid" // Identifier parsing
	"gorm.io/gorm"           // GORM ORM library
)

// Products persists Product documents.
type Products interface {
	Create(ctx context.Context, input map[string]any) (*domain.Product, error)
	// List and Get populate Creator; it stays nil when createdBy matches no user.
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	DeleteAll(ctx context.Context) error
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository returns a Products backed by db.
func NewProductRepository(db *gorm.DB) Products {
	return &productRepository{db: db}
}

// Create validates input and inserts a product. createdBy is checked for shape only.
func (r *productRepository) Create(ctx context.Context, input map[string]any) (*domain.Product, error) {
	doc, err := schema.Products.Validate(input) // Cast, default and check every field
	if err != nil {
		return nil, err
	}
	product := &domain.Product{
		Name:        doc.String("name"),
		Description: doc.String("description"),
		Price:       doc.Float("price"),
		Category:    doc.String("category"),
		InStock:     doc.Bool("inStock"),
		CreatedBy:   doc.String("createdBy"),
	}
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	products := []domain.Product{}
	if err := r.populated(ctx).Order("created_at, id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (r *productRepository) Get(ctx context.Context, id string) (*domain.Product, error) {
	pid, err := uuid.Parse(id) // Reject malformed IDs before querying
	if err != nil {
		return nil, ErrMalformedID
	}
	var product domain.Product
	err = r.populated(ctx).Where("id = ?", pid.String()).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &product, nil
}

func (r *productRepository) DeleteAll(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.Product{}).Error; err != nil {
		return fmt.Errorf("delete products: %w", err)
	}
	return nil
}

// populated preloads the creator projection (id, name, email).
func (r *productRepository) populated(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Creator", func(tx *gorm.DB) *gorm.DB {
		return tx.Select("id", "name", "email")
	})
}
