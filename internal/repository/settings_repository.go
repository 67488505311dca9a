package repository

//go:generate mockgen -source=settings_repository.go -destination=mock/mock_settings_repository.go -package=mock

import (
	"context"
	"database/sql"
	"fmt"

	"lunchbox/backend/internal/db"
	"lunchbox/backend/internal/model"
	"lunchbox/backend/internal/rowid"
)

// SettingsRepository defines the interface for settings storage.
type SettingsRepository interface {
	// List returns every settings row in row order.
	List(ctx context.Context) ([]model.Setting, error)
	// Replace deletes all rows and writes the given ones, atomically.
	Replace(ctx context.Context, settings []model.Setting) error
}

type settingsRepository struct {
	conn    *sql.DB
	dialect db.Dialect
	ids     *rowid.Generator
}

// NewSettingsRepository creates a new settings repository.
func NewSettingsRepository(conn *sql.DB, dialect db.Dialect, ids *rowid.Generator) SettingsRepository {
	return &settingsRepository{conn: conn, dialect: dialect, ids: ids}
}

func (r *settingsRepository) List(ctx context.Context) ([]model.Setting, error) {
	rows, err := r.conn.QueryContext(ctx, `SELECT id, key, value FROM settings ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settings []model.Setting
	for rows.Next() {
		var s model.Setting
		if err := rows.Scan(&s.ID, &s.Key, &s.Value); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

func (r *settingsRepository) Replace(ctx context.Context, settings []model.Setting) error {
	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM settings`); err != nil {
		return fmt.Errorf("clear settings: %w", err)
	}

	insert := r.dialect.Rebind(`INSERT INTO settings (id, key, value) VALUES (?, ?, ?)`)
	for _, s := range settings {
		if _, err := tx.ExecContext(ctx, insert, r.ids.Next(), s.Key, s.Value); err != nil {
			return fmt.Errorf("insert %s: %w", s.Key, err)
		}
	}
	return tx.Commit()
}
