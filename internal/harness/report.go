package harness

import (
	"encoding/json"
	"fmt"

	"github.com/lox/holdem-equity/internal/fileutil"
)

// SaveReport writes report as indented JSON to filename atomically.
func SaveReport(filename string, report Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := fileutil.WriteFileAtomic(filename, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
