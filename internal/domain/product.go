package domain

import (
	"time" // Timestamps

	"github.com/google/uuid" // Document identifiers
	"gorm.io/gorm"           // GORM hooks
)

// Product Model
type Product struct {
	ID          string    `gorm:"primaryKey;type:char(36)" json:"_id"`            // UUID primary key
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`         // Trimmed, at most 100 chars
	Description string    `gorm:"type:varchar(1000);not null" json:"description"` // At most 1000 chars
	Price       float64   `gorm:"not null" json:"price"`                          // Non-negative
	Category    string    `gorm:"type:varchar(32);not null" json:"category"`      // One of the known categories
	InStock     bool      `gorm:"not null" json:"inStock"`                        // Defaults to true at validation
	CreatedBy   string    `gorm:"type:char(36);index;not null" json:"createdBy"`  // User reference, not enforced
	Creator     *Creator  `gorm:"foreignKey:CreatedBy;-:migration" json:"-"`      // Populated on reads, nil if dangling
	CreatedAt   time.Time `json:"createdAt"`                                      // Set by GORM on create
	UpdatedAt   time.Time `json:"updatedAt"`                                      // Set by GORM on save
}

// BeforeCreate assigns a fresh identifier
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Creator is the projection of a User embedded in product reads
type Creator struct {
	ID    string `gorm:"primaryKey" json:"_id"` // User ID
	Name  string `json:"name"`                  // User name
	Email string `json:"email"`                 // User email
}

// TableName maps Creator onto the users table
func (Creator) TableName() string { return "users" }
