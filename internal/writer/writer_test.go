package writer

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"synthkit/internal/engine"
)

func sampleRows() engine.Dataset {
	return engine.Dataset{
		{"id": 1, "full_name": "First Person", "qty": 3, "notes": nil},
		{"id": 2, "full_name": "Second Person", "qty": 5, "notes": "hello"},
	}
}

func TestFilename(t *testing.T) {
	if got := Filename("retail", "dim_customer", "csv"); got != "retail__dim_customer.csv" {
		t.Errorf("Unexpected filename %q", got)
	}
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, Filename("retail", "dim_customer", "csv"))

	fields := []string{"id", "full_name", "qty", "notes"}
	if err := WriteCSV(path, sampleRows(), fields); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Failed to read back CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d records", len(records))
	}
	if records[0][0] != "id" || records[0][1] != "full_name" {
		t.Errorf("Unexpected header order %v", records[0])
	}
	if records[1][3] != "" {
		t.Errorf("Expected nil cell to serialize empty, got %q", records[1][3])
	}
	if records[2][1] != "Second Person" {
		t.Errorf("Unexpected cell %q", records[2][1])
	}
}

func TestWriteJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, Filename("retail", "dim_customer", "json"))

	if err := WriteJSON(path, sampleRows()); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[1]["full_name"] != "Second Person" {
		t.Errorf("Unexpected row content %v", rows[1])
	}
}

func TestWriteDatasetRejectsUnknownFormat(t *testing.T) {
	if _, err := WriteDataset(t.TempDir(), "retail", "dim_customer", "parquet", sampleRows(), nil); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestWriteSummary(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteSummary(dir, map[string]any{"total_records": 42})
	if err != nil {
		t.Fatalf("WriteSummary failed: %v", err)
	}
	if filepath.Base(path) != "ecosystem_summary.json" {
		t.Errorf("Unexpected summary filename %q", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Summary file missing: %v", err)
	}
}

func TestBuildQualityReport(t *testing.T) {
	rows := engine.Dataset{
		{"a": 1, "b": nil},
		{"a": nil, "b": nil},
		{"a": 3, "b": "x"},
	}

	report := BuildQualityReport(rows)
	if report.RowCount != 3 {
		t.Fatalf("Expected 3 rows, got %d", report.RowCount)
	}

	byCol := make(map[string]ColumnReport)
	for _, c := range report.Columns {
		byCol[c.Column] = c
	}
	if byCol["a"].NullCount != 1 {
		t.Errorf("Expected 1 null in a, got %d", byCol["a"].NullCount)
	}
	if byCol["b"].NullCount != 2 {
		t.Errorf("Expected 2 nulls in b, got %d", byCol["b"].NullCount)
	}
	if pct := byCol["b"].NullPct; pct < 66 || pct > 67 {
		t.Errorf("Expected b null pct near 66.7, got %v", pct)
	}
}
