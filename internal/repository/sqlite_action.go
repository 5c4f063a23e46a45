package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/attendance/internal/db"
	"github.com/alexanderramin/attendance/internal/domain"
	"github.com/google/uuid"
)

// SQLiteActionRepo implements ActionRepo and ActionWriter over the
// attendance and attendance_actions tables.
type SQLiteActionRepo struct {
	db db.DBTX
}

func NewSQLiteActionRepo(db db.DBTX) *SQLiteActionRepo {
	return &SQLiteActionRepo{db: db}
}

var (
	_ ActionRepo   = (*SQLiteActionRepo)(nil)
	_ ActionWriter = (*SQLiteActionRepo)(nil)
)

func (r *SQLiteActionRepo) ListActionTimes(ctx context.Context, employee, day string, kind *domain.ActionKind) ([]domain.ActionRow, error) {
	query := `SELECT aa.action, aa.action_time
		FROM attendance_actions aa
		JOIN attendance a ON aa.attendance_id = a.id
		WHERE a.employee = ? AND a.day = ?`
	args := []any{employee, day}
	if kind != nil {
		query += ` AND aa.action = ?`
		args = append(args, string(*kind))
	}
	query += ` ORDER BY aa.id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listing action times: %w", ErrStoreQuery, err)
	}
	defer rows.Close()
	return scanActionRows(rows)
}

func (r *SQLiteActionRepo) ListActions(ctx context.Context, employee, day string) ([]domain.ActionRow, error) {
	return r.ListActionTimes(ctx, employee, day, nil)
}

func (r *SQLiteActionRepo) ListDaysByEmployee(ctx context.Context, employee string) ([]string, error) {
	query := `SELECT a.day
		FROM attendance_actions aa
		JOIN attendance a ON aa.attendance_id = a.id
		WHERE a.employee = ?
		ORDER BY aa.id`
	rows, err := r.db.QueryContext(ctx, query, employee)
	if err != nil {
		return nil, fmt.Errorf("%w: listing days: %w", ErrStoreQuery, err)
	}
	defer rows.Close()

	var days []string
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("%w: scanning day: %w", ErrStoreQuery, err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating days: %w", ErrStoreQuery, err)
	}
	return days, nil
}

// EnsureAttendance returns the attendance id for (employee, day), creating
// the row on first use.
func (r *SQLiteActionRepo) EnsureAttendance(ctx context.Context, employee, day string) (string, error) {
	var id string
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM attendance WHERE employee = ? AND day = ?`, employee, day).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: loading attendance: %w", ErrStoreQuery, err)
	}

	id = uuid.New().String()
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO attendance (id, employee, day, created_at) VALUES (?, ?, ?, ?)`,
		id, employee, day, nowUTC()); err != nil {
		return "", fmt.Errorf("%w: inserting attendance: %w", ErrStoreQuery, err)
	}
	return id, nil
}

func (r *SQLiteActionRepo) AppendAction(ctx context.Context, attendanceID string, kind domain.ActionKind, timestamp string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO attendance_actions (attendance_id, action, action_time) VALUES (?, ?, ?)`,
		attendanceID, string(kind), timestamp)
	if err != nil {
		return fmt.Errorf("%w: inserting action: %w", ErrStoreQuery, err)
	}
	return nil
}
