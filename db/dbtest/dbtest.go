// Package dbtest provides throwaway migrated databases for tests.
package dbtest

import (
	"fmt"
	"testing"

	"github.com/Shattajit/Mini-CRM/db"
	"github.com/Shattajit/Mini-CRM/internal/config"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// New returns a migrated in-memory sqlite database private to t. A single
// connection keeps the in-memory database alive for the whole test.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.ConnectDatabase(config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		URL:          fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close(gdb)
	})

	if err := db.MigrateDatabase(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return gdb
}
