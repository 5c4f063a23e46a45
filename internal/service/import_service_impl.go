package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/attendance/internal/db"
	"github.com/alexanderramin/attendance/internal/domain"
	"github.com/alexanderramin/attendance/internal/importer"
	"github.com/alexanderramin/attendance/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) ImportLog(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportLogFromSchema(ctx, schema)
}

func (s *importService) ImportLogFromSchema(ctx context.Context, schema *importer.ImportSchema) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		if result != nil {
			fields["employee_count"] = result.EmployeeCount
			fields["day_count"] = result.DayCount
			fields["action_count"] = result.ActionCount
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-log",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	records, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return appendRecords(ctx, repository.NewSQLiteActionRepo(tx), records)
	})
	if err != nil {
		return nil, fmt.Errorf("writing attendance log: %w", err)
	}

	days := 0
	for _, e := range schema.Employees {
		days += len(e.Days)
	}
	return &ImportResult{
		EmployeeCount: len(schema.Employees),
		DayCount:      days,
		ActionCount:   len(records),
	}, nil
}

// appendRecords writes records in order, creating each (employee, day)
// attendance row on first use.
func appendRecords(ctx context.Context, w repository.ActionWriter, records []domain.ActionRecord) error {
	ids := make(map[[2]string]string)
	for _, r := range records {
		key := [2]string{r.Employee, r.Day}
		id, ok := ids[key]
		if !ok {
			var err error
			id, err = w.EnsureAttendance(ctx, r.Employee, r.Day)
			if err != nil {
				return err
			}
			ids[key] = id
		}
		if err := w.AppendAction(ctx, id, r.Kind, domain.FormatActionTime(r.Timestamp)); err != nil {
			return err
		}
	}
	return nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
