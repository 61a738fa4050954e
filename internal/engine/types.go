package engine

import (
	"synthkit/internal/quality"
	"synthkit/internal/synth"
)

// DateRange re-exports the synthesizer's inclusive sampling window.
type DateRange = synth.DateRange

// Row is one generated record: field name to scalar value.
type Row = map[string]any

// Dataset is an ordered sequence of rows sharing one schema and batch.
type Dataset = []Row

// Options tune a single generation call. The zero value means: seed from the
// environment or the fixed default, no error injection, global geography,
// dates relative to now.
type Options struct {
	Seed         *int64
	ErrorProfile string
	// Budget is the alternative corruption mode: a single error budget spent
	// across cells or rows instead of per-type probabilities.
	Budget    *quality.BudgetProfile
	Geography string
	DateRange *DateRange
}

// TableSpec names one table of a two-table generation, plus the foreign-key
// field the dependent side carries.
type TableSpec struct {
	Domain  string
	Table   string
	FKField string
}

// TwoTableOptions extends Options for relational generation.
type TwoTableOptions struct {
	Options
	SCD2       bool
	ChangeProb float64
}
