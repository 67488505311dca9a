package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"lunchbox/backend/internal/db"
	"lunchbox/backend/internal/model"
	"lunchbox/backend/internal/repository"
	"lunchbox/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func newOrderRepo(t *testing.T) (repository.OrderRepository, *sql.DB) {
	t.Helper()
	conn := testutil.NewTestDB(t)
	return repository.NewOrderRepository(conn, db.SQLite, testutil.NewIDs(t)), conn
}

func TestOrderRepository_AppendAndList(t *testing.T) {
	repo, _ := newOrderRepo(t)
	ctx := context.Background()

	firstID, err := repo.Append(ctx, model.OrderRecord{
		Date: "2024-01-10", User: "alice", Menu: "Bibimbap", Time: "11:02",
		GuestLabel: model.EmployeeLabel, UpdatedAt: "2024-01-10T08:02:00.000Z",
	})
	require.NoError(t, err)
	secondID, err := repo.Append(ctx, model.OrderRecord{
		Date: "2024-01-10", User: "bob", Menu: "Ramen", Time: "11:05",
		GuestLabel: model.GuestLabel, UpdatedAt: "2024-01-10T08:05:00.000Z",
	})
	require.NoError(t, err)
	require.Greater(t, secondID, firstID)

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, firstID, rows[0].ID)
	require.Equal(t, "2024-01-10", rows[0].Date)
	require.Equal(t, "alice", rows[0].User)
	require.Equal(t, "Bibimbap", rows[0].Menu)
	require.Equal(t, "11:02", rows[0].Time)
	require.Equal(t, model.EmployeeLabel, rows[0].GuestLabel)
	require.Equal(t, "bob", rows[1].User)
	require.Equal(t, model.GuestLabel, rows[1].GuestLabel)
}

func TestOrderRepository_List_NativeDateCell(t *testing.T) {
	repo, conn := newOrderRepo(t)

	native := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	testutil.SeedOrderRow(t, conn, 1, native.Unix(), "alice", "Soup", model.EmployeeLabel, "")

	rows, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	cell, ok := rows[0].Date.(time.Time)
	require.True(t, ok, "integer date cell should come back as time.Time")
	require.True(t, native.Equal(cell))
}

func TestOrderRepository_Update(t *testing.T) {
	repo, _ := newOrderRepo(t)
	ctx := context.Background()

	id, err := repo.Append(ctx, model.OrderRecord{Date: "2024-01-10", User: "alice", Menu: "Soup"})
	require.NoError(t, err)

	err = repo.Update(ctx, id, model.OrderRecord{
		Date: "2024-01-10", User: "alice", Menu: "Salad", Time: "11:30",
		GuestLabel: model.GuestLabel, UpdatedAt: "2024-01-10T08:30:00.000Z",
	})
	require.NoError(t, err)

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, id, rows[0].ID)
	require.Equal(t, "Salad", rows[0].Menu)
	require.Equal(t, "11:30", rows[0].Time)
	require.Equal(t, model.GuestLabel, rows[0].GuestLabel)
	require.Equal(t, "2024-01-10T08:30:00.000Z", rows[0].UpdatedAt)
}

func TestOrderRepository_Update_MissingRow(t *testing.T) {
	repo, _ := newOrderRepo(t)

	err := repo.Update(context.Background(), 42, model.OrderRecord{User: "ghost"})
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestOrderRepository_DeleteRows(t *testing.T) {
	repo, conn := newOrderRepo(t)
	ctx := context.Background()

	testutil.SeedOrderRow(t, conn, 1, "2024-01-10", "alice", "A", model.EmployeeLabel, "")
	testutil.SeedOrderRow(t, conn, 2, "2024-01-10", "alice", "B", model.EmployeeLabel, "")
	testutil.SeedOrderRow(t, conn, 3, "2024-01-10", "bob", "C", model.EmployeeLabel, "")

	deleted, err := repo.DeleteRows(ctx, []int64{1, 3, 99})
	require.NoError(t, err)
	require.Equal(t, int64(2), deleted)

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, int64(2), rows[0].ID)

	deleted, err = repo.DeleteRows(ctx, nil)
	require.NoError(t, err)
	require.Zero(t, deleted)
}
