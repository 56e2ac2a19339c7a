package report

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON marshals v with two-space indentation and writes it to path,
// overwriting any previous report. Key order is stable: struct fields keep
// declaration order and map keys are sorted by encoding/json.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
