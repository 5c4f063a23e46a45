package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/attendance/internal/repository"
	"github.com/alexanderramin/attendance/internal/testutil"
	"github.com/alexanderramin/attendance/internal/timesheet"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (*sql.DB, *repository.SQLiteActionRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return database, repository.NewSQLiteActionRepo(database)
}

func seededRepo(t *testing.T) *repository.SQLiteActionRepo {
	t.Helper()
	_, repo := setupRepo(t)
	testutil.SeedSampleData(t, repo)
	return repo
}

func cairo(t *testing.T) *timesheet.Normalizer {
	t.Helper()
	n, err := timesheet.NewNormalizer(timesheet.DefaultSourceZone)
	require.NoError(t, err)
	return n
}

// recordingObserver keeps every event it receives.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) Events() []UseCaseEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]UseCaseEvent(nil), r.events...)
}
