package matching

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// exportPath builds the deterministic export file name, e.g.
// "matches_for_techstartup_inc.csv" for company "TechStartup Inc".
func exportPath(dir, prefix, companyName string) string {
	normalized := strings.ReplaceAll(strings.ToLower(companyName), " ", "_")
	return filepath.Join(dir, prefix+normalized+".csv")
}

// writeQuotedCSV writes rows with every field quoted, which is the export
// contract regardless of whether a field needs quoting.
func writeQuotedCSV(path string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	for _, row := range rows {
		fields := make([]string, len(row))
		for i, f := range row {
			fields[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
		}
		if _, err := fmt.Fprintln(file, strings.Join(fields, ",")); err != nil {
			return fmt.Errorf("failed to write export row: %w", err)
		}
	}

	return nil
}
