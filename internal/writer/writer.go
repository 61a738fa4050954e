// Package writer persists generated datasets to disk as CSV or JSON.
package writer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"synthkit/internal/engine"
)

// Filename builds the canonical output name for a table: domain and table
// joined by a double underscore, plus the format extension.
func Filename(domain, table, format string) string {
	return fmt.Sprintf("%s__%s.%s", domain, table, format)
}

// columns returns the header order for rows: fields when given, otherwise
// the sorted union of keys across all rows.
func columns(rows engine.Dataset, fields []string) []string {
	if len(fields) > 0 {
		return fields
	}
	seen := make(map[string]bool)
	var cols []string
	for _, row := range rows {
		for k := range row {
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	sort.Strings(cols)
	return cols
}

// WriteCSV writes rows to path with one header line. fields fixes the column
// order; pass nil to fall back to sorted keys. Nil cells are empty strings.
func WriteCSV(path string, rows engine.Dataset, fields []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	cols := columns(rows, fields)
	if err := w.Write(cols); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	record := make([]string, len(cols))
	for _, row := range rows {
		for i, col := range cols {
			v, ok := row[col]
			if !ok || v == nil {
				record[i] = ""
				continue
			}
			record[i] = fmt.Sprintf("%v", v)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// WriteJSON writes rows to path as an indented JSON array.
func WriteJSON(path string, rows engine.Dataset) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal rows: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// WriteDataset dispatches on format ("csv" or "json") using the canonical
// filename under outDir, returning the path written.
func WriteDataset(outDir, domain, table, format string, rows engine.Dataset, fields []string) (string, error) {
	path := filepath.Join(outDir, Filename(domain, table, format))
	switch format {
	case "csv":
		return path, WriteCSV(path, rows, fields)
	case "json":
		return path, WriteJSON(path, rows)
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteSummary writes an ecosystem run summary next to its datasets.
func WriteSummary(outDir string, summary any) (string, error) {
	path := filepath.Join(outDir, "ecosystem_summary.json")
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal summary: %w", err)
	}
	return path, os.WriteFile(path, data, 0644)
}
