package contract

import "github.com/alexanderramin/attendance/internal/domain"

// DailySummaryResponse is the wire form of a daily summary.
type DailySummaryResponse struct {
	Attended bool   `json:"attended"`
	Duration string `json:"duration"`
}

func NewDailySummaryResponse(s *domain.DailySummary) DailySummaryResponse {
	return DailySummaryResponse{Attended: s.Attended, Duration: s.Duration.String()}
}
