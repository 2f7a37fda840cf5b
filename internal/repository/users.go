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

// Users persists User documents.
type Users interface {
	Create(ctx context.Context, input map[string]any) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	DeleteAll(ctx context.Context) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a Users backed by db.
func NewUserRepository(db *gorm.DB) Users {
	return &userRepository{db: db}
}

// Create validates input and inserts a user. Email uniqueness is left to the unique index
// so concurrent creates cannot both succeed.
func (r *userRepository) Create(ctx context.Context, input map[string]any) (*domain.User, error) {
	doc, err := schema.Users.Validate(input) // Cast, default and check every field
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		Name:     doc.String("name"),
		Email:    domain.Email(doc.String("email")),
		Password: doc.String("password"),
		Role:     doc.String("role"),
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateKey // Unique email index rejected the insert
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	user.Password = "" // Never handed back to callers
	return user, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	if err := r.db.WithContext(ctx).Omit("password").Order("created_at, id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *userRepository) Get(ctx context.Context, id string) (*domain.User, error) {
	uid, err := uuid.Parse(id) // Reject malformed IDs before querying
	if err != nil {
		return nil, ErrMalformedID
	}
	var user domain.User
	err = r.db.WithContext(ctx).Omit("password").Where("id = ?", uid.String()).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) DeleteAll(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.User{}).Error; err != nil {
		return fmt.Errorf("delete users: %w", err)
	}
	return nil
}
