package repository

import (
	"context"

	"github.com/alexanderramin/attendance/internal/domain"
)

// ActionRepo is the read side of the event store. Rows come back in the
// order they were recorded.
type ActionRepo interface {
	// ListActionTimes returns the actions recorded for employee on day,
	// optionally restricted to one kind.
	ListActionTimes(ctx context.Context, employee, day string, kind *domain.ActionKind) ([]domain.ActionRow, error)
	// ListDaysByEmployee returns the day of every action recorded for
	// employee, one entry per action, duplicates included.
	ListDaysByEmployee(ctx context.Context, employee string) ([]string, error)
	// ListActions returns every action recorded for employee on day.
	ListActions(ctx context.Context, employee, day string) ([]domain.ActionRow, error)
}

// ActionWriter appends to the event store. Only the import and record
// tooling writes; the summary and history builders never do.
type ActionWriter interface {
	EnsureAttendance(ctx context.Context, employee, day string) (string, error)
	AppendAction(ctx context.Context, attendanceID string, kind domain.ActionKind, timestamp string) error
}
