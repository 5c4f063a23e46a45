package testutil

import (
	"context"
	"sync/atomic"

	"github.com/alexanderramin/attendance/internal/domain"
)

// ActionReader mirrors repository.ActionRepo.
type ActionReader interface {
	ListActionTimes(ctx context.Context, employee, day string, kind *domain.ActionKind) ([]domain.ActionRow, error)
	ListDaysByEmployee(ctx context.Context, employee string) ([]string, error)
	ListActions(ctx context.Context, employee, day string) ([]domain.ActionRow, error)
}

// FailOnNthQueryRepo wraps an ActionRepo and returns Err from the Nth read
// (counting from 1). Other reads pass through to the wrapped repo.
type FailOnNthQueryRepo struct {
	Repo   ActionReader
	FailOn int32
	Err    error

	count atomic.Int32
}

// Calls reports how many reads have been attempted.
func (f *FailOnNthQueryRepo) Calls() int {
	return int(f.count.Load())
}

func (f *FailOnNthQueryRepo) fail() bool {
	return f.count.Add(1) == f.FailOn
}

func (f *FailOnNthQueryRepo) ListActionTimes(ctx context.Context, employee, day string, kind *domain.ActionKind) ([]domain.ActionRow, error) {
	if f.fail() {
		return nil, f.Err
	}
	return f.Repo.ListActionTimes(ctx, employee, day, kind)
}

func (f *FailOnNthQueryRepo) ListDaysByEmployee(ctx context.Context, employee string) ([]string, error) {
	if f.fail() {
		return nil, f.Err
	}
	return f.Repo.ListDaysByEmployee(ctx, employee)
}

func (f *FailOnNthQueryRepo) ListActions(ctx context.Context, employee, day string) ([]domain.ActionRow, error) {
	if f.fail() {
		return nil, f.Err
	}
	return f.Repo.ListActions(ctx, employee, day)
}
