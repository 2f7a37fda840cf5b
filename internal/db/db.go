package db

import (
	"fmt"  // Error wrapping
	"time" // Slow query threshold

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/gorm"               // GORM ORM library
	"gorm.io/gorm/logger"        // GORM logger interface
)

// Config returns the GORM configuration shared by every dialector
func Config() *gorm.Config {
	return &gorm.Config{
		TranslateError:                           true, // Map driver errors onto gorm.ErrDuplicatedKey and friends
		DisableForeignKeyConstraintWhenMigrating: true, // createdBy is a reference, not a constraint
		Logger: logger.New(logrus.StandardLogger(), logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Warn on slow queries
			LogLevel:                  logger.Warn,            // Only warnings and errors
			IgnoreRecordNotFoundError: true,                   // Not found is a normal outcome
		}),
	}
}

// Open connects to MySQL using the given DSN
func Open(dsn string) (*gorm.DB, error) {
	return OpenDialector(mysql.Open(dsn))
}

// OpenDialector connects through any GORM dialector
func OpenDialector(d gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(d, Config())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}
