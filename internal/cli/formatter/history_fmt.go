package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/attendance/internal/contract"
)

// FormatHistory renders every recorded action of an employee, grouped by
// day in the order the days were first recorded. Times are UTC.
func FormatHistory(employee string, resp contract.HistoryResponse) string {
	if len(resp.Days) == 0 {
		return fmt.Sprintf("No attendance recorded for %s.\n", employee)
	}

	headers := []string{"DAY", "ACTION", "TIME (UTC)"}
	var rows [][]string
	actionCount := 0
	for _, d := range resp.Days {
		for i, a := range d.Actions {
			day := ""
			if i == 0 {
				day = Bold(d.Date)
			}
			rows = append(rows, []string{day, ActionColor(a.Action).Render(a.Action), StyleFg.Render(a.Time)})
			actionCount++
		}
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d days, %d actions", len(resp.Days), actionCount)) + "\n")

	return RenderBox("History: "+employee, b.String())
}
