// Package dbtest provides isolated in-memory databases for tests.
package dbtest

import (
	"testing" // Test handles

	"store_api/internal/db" // Shared GORM config and migrations

	"github.com/glebarez/sqlite" // Pure Go SQLite dialector
	"github.com/google/uuid"     // Unique database names
	"gorm.io/gorm"               // GORM ORM library
)

// New opens a fresh migrated SQLite database private to t.
func New(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	gdb, err := db.OpenDialector(sqlite.Open(dsn))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("test database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return gdb
}
