package db

import (
	"database/sql"
	"fmt"
)

// The order date column is declared without a type on SQLite so a row can
// carry either text or a native (unix seconds) date, the way a spreadsheet
// cell can.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS orders (
  id INTEGER PRIMARY KEY,
  order_date,
  user_name TEXT NOT NULL,
  menu TEXT NOT NULL DEFAULT '',
  order_time TEXT NOT NULL DEFAULT '',
  guest_label TEXT NOT NULL DEFAULT '',
  updated_at TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_orders_user_name ON orders(user_name);

CREATE TABLE IF NOT EXISTS settings (
  id INTEGER PRIMARY KEY,
  key TEXT NOT NULL,
  value TEXT NOT NULL DEFAULT ''
);
`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS orders (
  id BIGINT PRIMARY KEY,
  order_date TEXT,
  user_name TEXT NOT NULL,
  menu TEXT NOT NULL DEFAULT '',
  order_time TEXT NOT NULL DEFAULT '',
  guest_label TEXT NOT NULL DEFAULT '',
  updated_at TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_orders_user_name ON orders(user_name);

CREATE TABLE IF NOT EXISTS settings (
  id BIGINT PRIMARY KEY,
  key TEXT NOT NULL,
  value TEXT NOT NULL DEFAULT ''
);
`

// Migrate creates the tables when they are missing. Existing data is never
// rewritten.
func Migrate(db *sql.DB, dialect Dialect) error {
	schema := sqliteSchema
	if dialect == Postgres {
		schema = postgresSchema
	}
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("migrate %s schema: %w", dialect, err)
	}
	return nil
}
