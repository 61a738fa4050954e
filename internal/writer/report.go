package writer

import (
	"sort"

	"synthkit/internal/engine"
)

// ColumnReport summarizes one column's data quality across a dataset.
type ColumnReport struct {
	Column    string  `json:"column"`
	NullCount int     `json:"null_count"`
	NullPct   float64 `json:"null_pct"`
}

// QualityReport is a per-column null census over a finished dataset.
type QualityReport struct {
	RowCount int            `json:"row_count"`
	Columns  []ColumnReport `json:"columns"`
}

// BuildQualityReport counts nil cells per column. Columns come out sorted.
func BuildQualityReport(rows engine.Dataset) *QualityReport {
	nulls := make(map[string]int)
	for _, row := range rows {
		for col, v := range row {
			if v == nil {
				nulls[col]++
			} else if _, ok := nulls[col]; !ok {
				nulls[col] = 0
			}
		}
	}

	report := &QualityReport{RowCount: len(rows)}
	cols := make([]string, 0, len(nulls))
	for col := range nulls {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	for _, col := range cols {
		pct := 0.0
		if len(rows) > 0 {
			pct = float64(nulls[col]) / float64(len(rows)) * 100
		}
		report.Columns = append(report.Columns, ColumnReport{
			Column:    col,
			NullCount: nulls[col],
			NullPct:   pct,
		})
	}
	return report
}
