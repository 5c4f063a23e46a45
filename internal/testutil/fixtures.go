package testutil

import (
	"context"
	"testing"

	"github.com/alexanderramin/attendance/internal/domain"
)

// ActionWriter mirrors repository.ActionWriter so fixtures can seed any store
// without importing the repository package.
type ActionWriter interface {
	EnsureAttendance(ctx context.Context, employee, day string) (string, error)
	AppendAction(ctx context.Context, attendanceID string, kind domain.ActionKind, timestamp string) error
}

// Action is a fixture row: one recorded action in store format.
type Action struct {
	Kind      domain.ActionKind
	Timestamp string
}

func CheckIn(ts string) Action  { return Action{Kind: domain.ActionCheckIn, Timestamp: ts} }
func CheckOut(ts string) Action { return Action{Kind: domain.ActionCheckOut, Timestamp: ts} }

// SeedDay records actions for employee on day in the given order.
func SeedDay(t *testing.T, w ActionWriter, employee, day string, actions ...Action) {
	t.Helper()
	ctx := context.Background()
	id, err := w.EnsureAttendance(ctx, employee, day)
	if err != nil {
		t.Fatalf("seeding attendance %s/%s: %v", employee, day, err)
	}
	for _, a := range actions {
		if err := w.AppendAction(ctx, id, a.Kind, a.Timestamp); err != nil {
			t.Fatalf("seeding action %s %s: %v", a.Kind, a.Timestamp, err)
		}
	}
}

// SeedSampleData loads the two-employee log used across service and CLI tests.
//
//	EMP01 2020-04-01  09:00 AM in, 05:00 PM out
//	EMP01 2020-04-02  08:30 AM in, 12:00 PM out, 01:00 PM in, 04:45 PM out
//	EMP02 2020-04-01  10:00 AM in (no check-out)
//	EMP02 2020-04-02  06:00 PM out (no check-in)
func SeedSampleData(t *testing.T, w ActionWriter) {
	t.Helper()
	SeedDay(t, w, "EMP01", "2020-04-01",
		CheckIn("2020-04-01 09:00 AM"),
		CheckOut("2020-04-01 05:00 PM"),
	)
	SeedDay(t, w, "EMP01", "2020-04-02",
		CheckIn("2020-04-02 08:30 AM"),
		CheckOut("2020-04-02 12:00 PM"),
		CheckIn("2020-04-02 01:00 PM"),
		CheckOut("2020-04-02 04:45 PM"),
	)
	SeedDay(t, w, "EMP02", "2020-04-01",
		CheckIn("2020-04-01 10:00 AM"),
	)
	SeedDay(t, w, "EMP02", "2020-04-02",
		CheckOut("2020-04-02 06:00 PM"),
	)
}
