package timesheet

import (
	"time"

	"github.com/alexanderramin/attendance/internal/domain"
)

// AggregateDuration sums whole hours and leftover minutes per session.
// Each session contributes (seconds/60) mod 60 minutes on its own; the
// minute total is never carried into hours. A session that ends before it
// starts contributes negative components.
func AggregateDuration(sessions []domain.Session) domain.Duration {
	var total domain.Duration
	for _, s := range sessions {
		secs := int(s.End.Sub(s.Start) / time.Second)
		total.Hours += secs / 3600
		total.Minutes += (secs / 60) % 60
	}
	return total
}
