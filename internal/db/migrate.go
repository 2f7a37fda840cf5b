package db

import (
	"store_api/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// Migrate creates missing tables, columns and indexes for every model
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing columns and indexes (including the unique email index)
	if err := db.AutoMigrate(&domain.User{}, &domain.Product{}); err != nil {
		return err
	}
	logrus.Info("Migration completed.") // Log successful migration
	return nil
}
