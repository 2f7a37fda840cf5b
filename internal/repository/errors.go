package repository

import (
	"errors"  // Error classification
	"strings" // Error text matching

	"github.com/go-sql-driver/mysql" // MySQL error codes
	"gorm.io/gorm"                   // GORM ORM library
)

var (
	// ErrNotFound is returned when no document has the requested identifier.
	ErrNotFound = errors.New("not found")
	// ErrMalformedID is returned when an identifier is not a valid UUID.
	ErrMalformedID = errors.New("malformed identifier")
	// ErrDuplicateKey is returned when a unique index rejects a write.
	ErrDuplicateKey = errors.New("duplicate key")
)

const mysqlDuplicateEntry = 1062

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
