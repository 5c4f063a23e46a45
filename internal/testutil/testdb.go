package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/attendance/internal/db"
)

// NewTestDB opens a migrated in-memory attendance store on a single
// connection. It is closed by t.Cleanup.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return openStore(t, db.MemoryPath)
}

// NewTestFileDB opens a migrated store in t.TempDir. Use it when a test
// needs several pooled connections to see the same rows.
func NewTestFileDB(t *testing.T) *sql.DB {
	t.Helper()
	return openStore(t, filepath.Join(t.TempDir(), "attendance_test.db"))
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

func openStore(t *testing.T, path string) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(path)
	if err != nil {
		t.Fatalf("opening test store %s: %v", path, err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}
