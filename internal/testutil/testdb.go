package testutil

import (
	"database/sql"
	"testing"

	"github.com/nholm/sundial/internal/db"
)

// NewTestDB opens a fresh in-memory SQLite database with the full
// migration set applied, closed automatically when the test ends.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// NewTestUoW builds a UnitOfWork over a test database.
func NewTestUoW(conn *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(conn)
}
