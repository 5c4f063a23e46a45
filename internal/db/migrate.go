package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies the attendance schema. Every statement is idempotent, so
// Migrate is safe to run on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS attendance (
		id         TEXT PRIMARY KEY,
		employee   TEXT NOT NULL,
		day        TEXT NOT NULL,
		created_at TEXT NOT NULL,
		UNIQUE (employee, day)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_attendance_employee ON attendance(employee)`,

	`CREATE TABLE IF NOT EXISTS attendance_actions (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		attendance_id TEXT NOT NULL REFERENCES attendance(id) ON DELETE CASCADE,
		action        TEXT NOT NULL CHECK(action IN ('CheckIn','CheckOut')),
		action_time   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_attendance_actions_attendance ON attendance_actions(attendance_id)`,
}
