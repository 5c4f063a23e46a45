package timesheet

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/alexanderramin/attendance/internal/domain"
)

// DefaultSourceZone is the civil zone in which action timestamps are recorded.
const DefaultSourceZone = "Africa/Cairo"

// ErrUnknownTimezone is returned when the source zone cannot be loaded.
var ErrUnknownTimezone = errors.New("unknown timezone")

// Normalizer converts recorded civil times from a fixed source zone into UTC.
type Normalizer struct {
	loc *time.Location
}

// NewNormalizer loads the named IANA zone. An empty name selects
// DefaultSourceZone.
func NewNormalizer(zone string) (*Normalizer, error) {
	if zone == "" {
		zone = DefaultSourceZone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnknownTimezone, zone, err)
	}
	return &Normalizer{loc: loc}, nil
}

// Location returns the source zone.
func (n *Normalizer) Location() *time.Location {
	return n.loc
}

// ToUTC reads the wall-clock fields of local as a time in the source zone
// and returns the equivalent UTC instant. The location attached to local is
// ignored. A wall clock that falls in a skipped or repeated hour takes
// the zone's standard offset.
func (n *Normalizer) ToUTC(local time.Time) time.Time {
	zoned := time.Date(local.Year(), local.Month(), local.Day(),
		local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), n.loc)
	return zoned.UTC()
}

// Normalize parses a stored action row and converts its timestamp to UTC.
func (n *Normalizer) Normalize(row domain.ActionRow) (domain.HistoryAction, error) {
	local, err := domain.ParseActionTime(row.Timestamp)
	if err != nil {
		return domain.HistoryAction{}, err
	}
	return domain.HistoryAction{Kind: row.Kind, Instant: n.ToUTC(local)}, nil
}
