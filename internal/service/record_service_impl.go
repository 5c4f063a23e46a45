package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/attendance/internal/db"
	"github.com/alexanderramin/attendance/internal/domain"
	"github.com/alexanderramin/attendance/internal/repository"
)

type recordService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewRecordService(uow db.UnitOfWork, observers ...UseCaseObserver) RecordService {
	return &recordService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

// RecordAction appends one action. The attendance day is the calendar date
// of the timestamp itself.
func (s *recordService) RecordAction(ctx context.Context, employee string, kind domain.ActionKind, timestamp string) (record *domain.ActionRecord, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"employee": employee, "kind": string(kind)}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "record-action",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if employee == "" {
		return nil, fmt.Errorf("employee code is required")
	}
	if _, err := domain.ParseActionKind(string(kind)); err != nil {
		return nil, err
	}
	ts, err := domain.ParseActionTime(timestamp)
	if err != nil {
		return nil, err
	}

	rec := domain.ActionRecord{
		Employee:  employee,
		Day:       ts.Format(domain.DayLayout),
		Kind:      kind,
		Timestamp: ts,
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return appendRecords(ctx, repository.NewSQLiteActionRepo(tx), []domain.ActionRecord{rec})
	})
	if err != nil {
		return nil, fmt.Errorf("recording action: %w", err)
	}
	return &rec, nil
}
