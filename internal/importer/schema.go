package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ImportSchema is the top-level structure of an attendance log file.
type ImportSchema struct {
	Employees []EmployeeImport `json:"employees" yaml:"employees"`
}

// EmployeeImport groups the recorded days of one employee.
type EmployeeImport struct {
	Code string      `json:"code" yaml:"code"`
	Days []DayImport `json:"days" yaml:"days"`
}

// DayImport lists the actions recorded on one calendar day, in order.
type DayImport struct {
	Date    string         `json:"date" yaml:"date"`
	Actions []ActionImport `json:"actions" yaml:"actions"`
}

// ActionImport is a single action in store format.
type ActionImport struct {
	Action string `json:"action" yaml:"action"`
	Time   string `json:"time" yaml:"time"`
}

// LoadImportSchema reads an attendance log. Files ending in .yaml or .yml
// are decoded as YAML; everything else as JSON.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	var schema ImportSchema
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing import file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing import file: %w", err)
		}
	}
	return &schema, nil
}
