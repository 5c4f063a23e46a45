package service

import (
	"context"
	"time"

	"github.com/alexanderramin/attendance/internal/domain"
	"github.com/alexanderramin/attendance/internal/repository"
	"github.com/alexanderramin/attendance/internal/timesheet"
)

type summaryService struct {
	actions  repository.ActionRepo
	observer UseCaseObserver
}

func NewSummaryService(actions repository.ActionRepo, observers ...UseCaseObserver) SummaryService {
	return &summaryService{actions: actions, observer: useCaseObserverOrNoop(observers)}
}

func (s *summaryService) GetDailySummary(ctx context.Context, employee, day string) (summary *domain.DailySummary, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"employee": employee, "day": day}
	defer func() {
		if summary != nil {
			fields["attended"] = summary.Attended
			fields["duration"] = summary.Duration.String()
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "daily-summary",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	all, err := s.actions.ListActions(ctx, employee, day)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return &domain.DailySummary{Employee: employee, Day: day}, nil
	}

	checkIns, err := s.loadTimes(ctx, employee, day, domain.ActionCheckIn)
	if err != nil {
		return nil, err
	}
	checkOuts, err := s.loadTimes(ctx, employee, day, domain.ActionCheckOut)
	if err != nil {
		return nil, err
	}

	sessions := timesheet.ReconstructSessions(checkIns, checkOuts)
	return &domain.DailySummary{
		Employee: employee,
		Day:      day,
		Attended: true,
		Duration: timesheet.AggregateDuration(sessions),
	}, nil
}

func (s *summaryService) loadTimes(ctx context.Context, employee, day string, kind domain.ActionKind) ([]time.Time, error) {
	rows, err := s.actions.ListActionTimes(ctx, employee, day, &kind)
	if err != nil {
		return nil, err
	}
	return timesheet.ParseActionTimes(rows)
}
