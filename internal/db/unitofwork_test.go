package db_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/alexanderramin/attendance/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func insertAttendance(ctx context.Context, tx db.DBTX, id, employee, day string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO attendance (id, employee, day, created_at) VALUES (?, ?, ?, datetime('now'))`,
		id, employee, day)
	return err
}

func countAttendance(t *testing.T, database *sql.DB, id string) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM attendance WHERE id = ?`, id).Scan(&n))
	return n
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertAttendance(ctx, tx, "a1", "EMP01", "2020-04-01")
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countAttendance(t, database, "a1"), "row should exist after commit")
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertAttendance(ctx, tx, "a2", "EMP01", "2020-04-02"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")
	assert.Equal(t, 0, countAttendance(t, database, "a2"), "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertAttendance(ctx, tx, "a3", "EMP01", "2020-04-03")
			panic("boom")
		})
	})
	assert.Equal(t, 0, countAttendance(t, database, "a3"), "row should not exist after panic rollback")
}

func TestWithinTx_ReturnsCallbackError(t *testing.T) {
	_, uow := openTestUoW(t)
	sentinel := errors.New("duplicate action")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return fmt.Errorf("appending: %w", sentinel)
	})
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, "appending: duplicate action", err.Error())
}

func TestWithinTx_CanceledContext(t *testing.T) {
	_, uow := openTestUoW(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
