package importer

import (
	"fmt"

	"github.com/alexanderramin/attendance/internal/domain"
)

// Convert flattens a validated ImportSchema into ActionRecords, preserving
// file order. Call ValidateImportSchema first.
func Convert(schema *ImportSchema) ([]domain.ActionRecord, error) {
	var records []domain.ActionRecord
	for _, e := range schema.Employees {
		for _, d := range e.Days {
			for _, a := range d.Actions {
				kind, err := domain.ParseActionKind(a.Action)
				if err != nil {
					return nil, fmt.Errorf("employee %s day %s: %w", e.Code, d.Date, err)
				}
				ts, err := domain.ParseActionTime(a.Time)
				if err != nil {
					return nil, fmt.Errorf("employee %s day %s: %w", e.Code, d.Date, err)
				}
				records = append(records, domain.ActionRecord{
					Employee:  e.Code,
					Day:       d.Date,
					Kind:      kind,
					Timestamp: ts,
				})
			}
		}
	}
	return records, nil
}
