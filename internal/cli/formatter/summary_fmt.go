package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/attendance/internal/contract"
)

// FormatDailySummary renders one employee's attendance for a day.
func FormatDailySummary(employee, day string, resp contract.DailySummaryResponse) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(employee), Dim(day)))
	b.WriteString("\n")
	b.WriteString(RenderTable(
		[]string{"ATTENDED", "DURATION"},
		[][]string{{AttendedIndicator(resp.Attended), StyleFg.Render(resp.Duration)}},
	))

	if strings.HasPrefix(resp.Duration, "-") || strings.Contains(resp.Duration, ":-") {
		b.WriteString("\n")
		b.WriteString(StyleYellow.Render("  WARNING: negative duration, check the recorded actions for this day") + "\n")
	}

	return RenderBox("Daily Summary", b.String())
}
