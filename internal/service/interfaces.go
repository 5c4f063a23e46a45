package service

import (
	"context"

	"github.com/alexanderramin/attendance/internal/domain"
	"github.com/alexanderramin/attendance/internal/importer"
)

// SummaryService answers whether an employee attended on a day and for how
// long. Every call re-reads the store; nothing is cached.
type SummaryService interface {
	GetDailySummary(ctx context.Context, employee, day string) (*domain.DailySummary, error)
}

// HistoryService builds the per-day action transcript for an employee with
// every timestamp normalized to UTC.
type HistoryService interface {
	GetAttendanceHistory(ctx context.Context, employee string) (*domain.AttendanceHistory, error)
}

// ImportResult holds the outcome of an attendance log import.
type ImportResult struct {
	EmployeeCount int
	DayCount      int
	ActionCount   int
}

type ImportService interface {
	ImportLog(ctx context.Context, filePath string) (*ImportResult, error)
	ImportLogFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}

type RecordService interface {
	RecordAction(ctx context.Context, employee string, kind domain.ActionKind, timestamp string) (*domain.ActionRecord, error)
}
