package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/attendance/internal/domain"
)

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// scanActionRows drains rows of (action, action_time) pairs.
func scanActionRows(rows *sql.Rows) ([]domain.ActionRow, error) {
	var out []domain.ActionRow
	for rows.Next() {
		var kind, ts string
		if err := rows.Scan(&kind, &ts); err != nil {
			return nil, fmt.Errorf("%w: scanning action row: %w", ErrStoreQuery, err)
		}
		out = append(out, domain.ActionRow{Kind: domain.ActionKind(kind), Timestamp: ts})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating actions: %w", ErrStoreQuery, err)
	}
	return out, nil
}
