package domain

import "time"

// HistoryAction is a recorded action normalized to a UTC instant.
type HistoryAction struct {
	Kind    ActionKind
	Instant time.Time
}

// HistoryEntry holds the actions recorded for one day, in store order.
type HistoryEntry struct {
	Day     string
	Actions []HistoryAction
}

// AttendanceHistory lists days in the order they first appear in the store.
type AttendanceHistory struct {
	Employee string
	Days     []HistoryEntry
}

// InstantLayout renders UTC instants as ISO-8601 with an explicit offset,
// e.g. "2020-04-01T07:00:00+00:00".
const InstantLayout = "2006-01-02T15:04:05-07:00"
