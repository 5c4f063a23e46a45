package domain

import (
	"errors"
	"fmt"
	"time"
)

// ActionTimeLayout is the fixed textual layout of stored action timestamps,
// e.g. "2020-04-01 09:00 AM".
const ActionTimeLayout = "2006-01-02 03:04 PM"

// DayLayout is the layout of calendar-day keys.
const DayLayout = "2006-01-02"

// ErrMalformedTimestamp is returned when an action timestamp does not match
// ActionTimeLayout.
var ErrMalformedTimestamp = errors.New("malformed timestamp")

// ActionRow is a raw (kind, timestamp text) pair as returned by the event store.
type ActionRow struct {
	Kind      ActionKind
	Timestamp string
}

// ActionRecord is a single recorded check-in or check-out for one employee and day.
type ActionRecord struct {
	Employee  string
	Day       string
	Kind      ActionKind
	Timestamp time.Time
}

// ParseActionTime parses a stored timestamp into a naive civil time.
// The returned value carries time.UTC as a placeholder location; it is not
// an instant until it is localized to the source zone.
func ParseActionTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(ActionTimeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD hh:mm AM/PM)", ErrMalformedTimestamp, s)
	}
	return t, nil
}

// FormatActionTime renders a civil time back into ActionTimeLayout.
func FormatActionTime(t time.Time) string {
	return t.Format(ActionTimeLayout)
}
