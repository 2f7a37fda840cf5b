package domain

import (
	"strconv" // Column length
	"time"    // Timestamps

	"github.com/google/uuid" // Document identifiers
	"gorm.io/gorm"           // GORM hooks
	"gorm.io/gorm/schema"    // GORM field metadata
)

// EmailMaxLength bounds the email column, and the schema rejects longer input with 400
const EmailMaxLength = 255

// Email is a user email compared byte for byte by the unique index
type Email string

// GormDBDataType gives MySQL a binary collation so uniqueness is exact-match
func (Email) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	column := "varchar(" + strconv.Itoa(EmailMaxLength) + ")"
	switch db.Dialector.Name() {
	case "mysql":
		return column + " CHARACTER SET utf8mb4 COLLATE utf8mb4_bin" // Case and accent sensitive
	default:
		return column // SQLite compares with BINARY already
	}
}

// User Model
type User struct {
	ID        string    `gorm:"primaryKey;type:char(36)" json:"_id"`   // UUID primary key
	Name      string    `gorm:"type:text;not null" json:"name"`        // Display name, unbounded
	Email     Email     `gorm:"uniqueIndex;not null" json:"email"`     // Unique email, exact match
	Password  string    `gorm:"type:text;not null" json:"-"`           // Stored as given, never serialized
	Role      string    `gorm:"type:varchar(16);not null" json:"role"` // Role: user or admin, defaulted by the schema
	CreatedAt time.Time `json:"createdAt"`                             // Set by GORM on create
	UpdatedAt time.Time `json:"updatedAt"`                             // Set by GORM on save
}

// BeforeCreate assigns a fresh identifier
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
