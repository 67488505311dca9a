package repository

//go:generate mockgen -source=order_repository.go -destination=mock/mock_order_repository.go -package=mock

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"time"

	"lunchbox/backend/internal/db"
	"lunchbox/backend/internal/model"
	"lunchbox/backend/internal/rowid"
)

// OrderRepository is the tabular order store. Rows are addressed by id,
// and ids grow with insertion order.
type OrderRepository interface {
	// List returns every row in row order.
	List(ctx context.Context) ([]model.OrderRow, error)
	// Update overwrites all columns of the row with the given id.
	Update(ctx context.Context, id int64, rec model.OrderRecord) error
	// Append adds a row after all existing rows and returns its id.
	Append(ctx context.Context, rec model.OrderRecord) (int64, error)
	// DeleteRows removes the given rows and returns how many were deleted.
	DeleteRows(ctx context.Context, ids []int64) (int64, error)
}

type orderRepository struct {
	conn    *sql.DB
	dialect db.Dialect
	ids     *rowid.Generator
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(conn *sql.DB, dialect db.Dialect, ids *rowid.Generator) OrderRepository {
	return &orderRepository{conn: conn, dialect: dialect, ids: ids}
}

func (r *orderRepository) List(ctx context.Context) ([]model.OrderRow, error) {
	rows, err := r.conn.QueryContext(ctx, `
		SELECT id, order_date, user_name, menu, order_time, guest_label, updated_at
		FROM orders ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderRow
	for rows.Next() {
		var row model.OrderRow
		var date any
		if err := rows.Scan(&row.ID, &date, &row.User, &row.Menu, &row.Time, &row.GuestLabel, &row.UpdatedAt); err != nil {
			return nil, err
		}
		row.Date = dateCell(date)
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *orderRepository) Update(ctx context.Context, id int64, rec model.OrderRecord) error {
	res, err := r.conn.ExecContext(ctx, r.dialect.Rebind(`
		UPDATE orders
		SET order_date = ?, user_name = ?, menu = ?, order_time = ?, guest_label = ?, updated_at = ?
		WHERE id = ?
	`), rec.Date, rec.User, rec.Menu, rec.Time, rec.GuestLabel, rec.UpdatedAt, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *orderRepository) Append(ctx context.Context, rec model.OrderRecord) (int64, error) {
	id := r.ids.Next()
	_, err := r.conn.ExecContext(ctx, r.dialect.Rebind(`
		INSERT INTO orders (id, order_date, user_name, menu, order_time, guest_label, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`), id, rec.Date, rec.User, rec.Menu, rec.Time, rec.GuestLabel, rec.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// DeleteRows deletes from the highest id down inside one transaction.
func (r *orderRepository) DeleteRows(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	ordered := slices.Clone(ids)
	slices.Sort(ordered)
	slices.Reverse(ordered)

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt := r.dialect.Rebind(`DELETE FROM orders WHERE id = ?`)
	var deleted int64
	for _, id := range ordered {
		res, err := tx.ExecContext(ctx, stmt, id)
		if err != nil {
			return 0, fmt.Errorf("delete row %d: %w", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		deleted += n
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return deleted, nil
}

// dateCell turns a scanned order_date into the cell shapes the calendar
// normalizer understands. Integers are unix seconds.
func dateCell(v any) any {
	switch d := v.(type) {
	case int64:
		return time.Unix(d, 0).UTC()
	case []byte:
		return string(d)
	default:
		return d
	}
}
