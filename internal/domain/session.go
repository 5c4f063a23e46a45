package domain

import (
	"fmt"
	"time"
)

// Session is one reconstructed check-in/check-out pair.
type Session struct {
	Start time.Time
	End   time.Time
}

// Duration is an (hours, minutes) total. Minutes are not normalized into
// hours, so Minutes may exceed 59 when several sessions are summed.
type Duration struct {
	Hours   int
	Minutes int
}

// String renders the duration as "H:M" without zero padding.
func (d Duration) String() string {
	return fmt.Sprintf("%d:%d", d.Hours, d.Minutes)
}

// DailySummary answers whether an employee attended on a day and for how long.
type DailySummary struct {
	Employee string
	Day      string
	Attended bool
	Duration Duration
}
