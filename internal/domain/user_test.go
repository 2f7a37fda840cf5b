package domain

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

// openMySQL builds a MySQL handle that never dials; only DDL generation is exercised.
func openMySQL(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "user:pw@tcp(127.0.0.1:1)/store_api?parseTime=true",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func TestEmail_GormDBDataType(t *testing.T) {
	assert.Contains(t, Email("").GormDBDataType(openMySQL(t), nil), "COLLATE utf8mb4_bin")

	lite, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	assert.Equal(t, "varchar(255)", Email("").GormDBDataType(lite, nil))
}

func TestUser_MySQLColumnTypes(t *testing.T) {
	db := openMySQL(t)
	stmt := &gorm.Statement{DB: db}
	require.NoError(t, stmt.Parse(&User{}))

	typer, ok := db.Migrator().(interface {
		FullDataTypeOf(*schema.Field) clause.Expr
	})
	require.True(t, ok)

	assert.Contains(t, typer.FullDataTypeOf(stmt.Schema.LookUpField("Email")).SQL, "COLLATE utf8mb4_bin")
	assert.Contains(t, typer.FullDataTypeOf(stmt.Schema.LookUpField("Name")).SQL, "text NOT NULL")
}
