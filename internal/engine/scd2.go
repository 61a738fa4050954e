package engine

import (
	"math/rand"
	"sort"
	"time"
)

// scd2Skip holds fields never chosen as the mutated attribute of a changed
// version.
var scd2Skip = map[string]bool{
	"id":                  true,
	"natural_key":         true,
	"tenant_id":           true,
	"source_system":       true,
	"source_table":        true,
	"batch_id":            true,
	"batch_time_utc":      true,
	"is_active":           true,
	"valid_from_utc":      true,
	"valid_to_utc":        true,
	"created_at_utc":      true,
	"created_by":          true,
	"updated_at_utc":      true,
	"updated_by":          true,
	"pii_sensitivity":     true,
	"processing_status":   true,
	"record_hash":         true,
	"dq_completeness_pct": true,
	"dq_validity_pct":     true,
	"currency_code":       true,
}

// SCD2Version expands rows into current plus historical versions. Every input
// row becomes an open version; with probability changeProb that version is
// closed and a changed open version follows it, so each natural key keeps
// exactly one open version.
func SCD2Version(rows Dataset, changeProb float64, rng *rand.Rand, now time.Time) Dataset {
	stamp := now.UTC().Format(time.RFC3339)
	out := make(Dataset, 0, len(rows))

	for _, r := range rows {
		current := cloneRow(r)
		current["valid_from_utc"] = stamp
		current["valid_to_utc"] = nil
		current["is_active"] = true

		if rng.Float64() < changeProb {
			changed := cloneRow(current)
			current["is_active"] = false
			current["valid_to_utc"] = stamp
			current["record_hash"] = ComputeRecordHash(current)

			changed["valid_from_utc"] = stamp
			changed["valid_to_utc"] = nil
			changed["is_active"] = true
			mutateOneField(changed)
			changed["record_hash"] = ComputeRecordHash(changed)

			out = append(out, current, changed)
			continue
		}

		current["record_hash"] = ComputeRecordHash(current)
		out = append(out, current)
	}

	return out
}

// GenerateSCD2 generates a table and expands it into SCD2 versions.
func (e *Engine) GenerateSCD2(domain, table string, rows int, changeProb float64, opts Options) (Dataset, error) {
	ctx, err := e.newContext(table, opts)
	if err != nil {
		return nil, err
	}
	base, err := e.generate(ctx, domain, table, rows, opts)
	if err != nil {
		return nil, err
	}
	return SCD2Version(base, changeProb, ctx.Rand, e.now()), nil
}

// mutateOneField tags the first mutable string field so the two versions are
// distinguishable.
func mutateOneField(row Row) {
	fields := make([]string, 0, len(row))
	for f := range row {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		if scd2Skip[f] {
			continue
		}
		if s, ok := row[f].(string); ok && s != "" {
			row[f] = s + "_v2"
			return
		}
	}
}

func cloneRow(r Row) Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
