package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/attendance/internal/domain"
)

// ValidateImportSchema checks the log for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	if len(schema.Employees) == 0 {
		errs = append(errs, fmt.Errorf("employees: at least one employee is required"))
	}

	seen := make(map[string]bool)
	for i, e := range schema.Employees {
		path := fmt.Sprintf("employees[%d]", i)
		if e.Code == "" {
			errs = append(errs, fmt.Errorf("%s.code is required", path))
		} else if seen[e.Code] {
			errs = append(errs, fmt.Errorf("%s.code: duplicate employee %q", path, e.Code))
		}
		seen[e.Code] = true
		errs = append(errs, validateDays(path, e.Days)...)
	}

	return errs
}

func validateDays(parent string, days []DayImport) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, d := range days {
		path := fmt.Sprintf("%s.days[%d]", parent, i)
		if d.Date == "" {
			errs = append(errs, fmt.Errorf("%s.date is required", path))
		} else if _, err := time.Parse(domain.DayLayout, d.Date); err != nil {
			errs = append(errs, fmt.Errorf("%s.date: invalid date format %q (expected YYYY-MM-DD)", path, d.Date))
		} else if seen[d.Date] {
			errs = append(errs, fmt.Errorf("%s.date: duplicate day %q", path, d.Date))
		}
		seen[d.Date] = true

		for j, a := range d.Actions {
			apath := fmt.Sprintf("%s.actions[%d]", path, j)
			if _, err := domain.ParseActionKind(a.Action); err != nil {
				errs = append(errs, fmt.Errorf("%s.action: %w", apath, err))
			}
			if _, err := domain.ParseActionTime(a.Time); err != nil {
				errs = append(errs, fmt.Errorf("%s.time: %w", apath, err))
			}
		}
	}
	return errs
}
