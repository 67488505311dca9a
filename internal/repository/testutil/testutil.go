// Package testutil provides a throwaway SQLite store for repository and
// integration tests.
package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"lunchbox/backend/internal/db"
	"lunchbox/backend/internal/rowid"

	"github.com/stretchr/testify/require"
)

// NewTestDB opens a migrated SQLite database that is removed with the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.Open(filepath.Join(t.TempDir(), "lunchbox-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// NewIDs returns a row id generator for tests.
func NewIDs(t *testing.T) *rowid.Generator {
	t.Helper()
	gen, err := rowid.New(1)
	require.NoError(t, err)
	return gen
}

// SeedOrderRow inserts a raw order row. date may be a string or an int64
// of unix seconds, matching what the column can hold.
func SeedOrderRow(t *testing.T, conn *sql.DB, id int64, date any, user, menu, guestLabel, updatedAt string) {
	t.Helper()
	_, err := conn.Exec(`
		INSERT INTO orders (id, order_date, user_name, menu, order_time, guest_label, updated_at)
		VALUES (?, ?, ?, ?, '12:00', ?, ?)
	`, id, date, user, menu, guestLabel, updatedAt)
	require.NoError(t, err)
}

// CountOrders returns the number of rows in the orders table.
func CountOrders(t *testing.T, conn *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM orders`).Scan(&n))
	return n
}
