package service

import (
	"context"
	"time"

	"github.com/alexanderramin/attendance/internal/domain"
	"github.com/alexanderramin/attendance/internal/repository"
	"github.com/alexanderramin/attendance/internal/timesheet"
)

type historyService struct {
	actions    repository.ActionRepo
	normalizer *timesheet.Normalizer
	observer   UseCaseObserver
}

func NewHistoryService(actions repository.ActionRepo, normalizer *timesheet.Normalizer, observers ...UseCaseObserver) HistoryService {
	return &historyService{
		actions:    actions,
		normalizer: normalizer,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *historyService) GetAttendanceHistory(ctx context.Context, employee string) (history *domain.AttendanceHistory, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"employee": employee}
	defer func() {
		if history != nil {
			fields["day_count"] = len(history.Days)
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "attendance-history",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	rawDays, err := s.actions.ListDaysByEmployee(ctx, employee)
	if err != nil {
		return nil, err
	}

	days := distinctInOrder(rawDays)
	entries := make([]domain.HistoryEntry, 0, len(days))
	for _, day := range days {
		rows, err := s.actions.ListActions(ctx, employee, day)
		if err != nil {
			return nil, err
		}
		actions := make([]domain.HistoryAction, 0, len(rows))
		for _, row := range rows {
			action, err := s.normalizer.Normalize(row)
			if err != nil {
				return nil, err
			}
			actions = append(actions, action)
		}
		entries = append(entries, domain.HistoryEntry{Day: day, Actions: actions})
	}

	return &domain.AttendanceHistory{Employee: employee, Days: entries}, nil
}

// distinctInOrder drops repeated values, keeping the first occurrence of each.
func distinctInOrder(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
