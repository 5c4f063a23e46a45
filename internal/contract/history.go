package contract

import "github.com/alexanderramin/attendance/internal/domain"

// HistoryResponse is the wire form of an attendance history. Days and
// actions are always arrays, never null.
type HistoryResponse struct {
	Days []HistoryDay `json:"days"`
}

type HistoryDay struct {
	Date    string          `json:"date"`
	Actions []HistoryAction `json:"actions"`
}

type HistoryAction struct {
	Action string `json:"action"`
	Time   string `json:"time"`
}

func NewHistoryResponse(h *domain.AttendanceHistory) HistoryResponse {
	days := make([]HistoryDay, 0, len(h.Days))
	for _, d := range h.Days {
		actions := make([]HistoryAction, 0, len(d.Actions))
		for _, a := range d.Actions {
			actions = append(actions, HistoryAction{
				Action: string(a.Kind),
				Time:   a.Instant.UTC().Format(domain.InstantLayout),
			})
		}
		days = append(days, HistoryDay{Date: d.Day, Actions: actions})
	}
	return HistoryResponse{Days: days}
}
