package timesheet

import (
	"time"

	"github.com/alexanderramin/attendance/internal/domain"
)

// ParseActionTimes parses stored timestamps in order. The first malformed
// value aborts the whole parse.
func ParseActionTimes(rows []domain.ActionRow) ([]time.Time, error) {
	out := make([]time.Time, 0, len(rows))
	for _, r := range rows {
		t, err := domain.ParseActionTime(r.Timestamp)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// Compensate equalizes the two lists by appending synthetic counterparts.
// A missing check-out becomes midnight of the day after the first check-in;
// a missing check-in becomes midnight of the day after the first check-out.
// The inputs are not modified.
func Compensate(checkIns, checkOuts []time.Time) ([]time.Time, []time.Time) {
	ins := append([]time.Time(nil), checkIns...)
	outs := append([]time.Time(nil), checkOuts...)

	switch {
	case len(ins) > len(outs):
		fill := nextMidnight(ins[0])
		for missing := len(ins) - len(outs); missing > 0; missing-- {
			outs = append(outs, fill)
		}
	case len(outs) > len(ins):
		fill := nextMidnight(outs[0])
		for missing := len(outs) - len(ins); missing > 0; missing-- {
			ins = append(ins, fill)
		}
	}
	return ins, outs
}

// ReconstructSessions compensates count mismatches and then pairs the i-th
// check-in with the i-th check-out. Pairing follows the order the lists were
// given in; nothing is sorted.
func ReconstructSessions(checkIns, checkOuts []time.Time) []domain.Session {
	ins, outs := Compensate(checkIns, checkOuts)
	sessions := make([]domain.Session, len(ins))
	for i := range ins {
		sessions[i] = domain.Session{Start: ins[i], End: outs[i]}
	}
	return sessions
}

func nextMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, t.Location())
}
