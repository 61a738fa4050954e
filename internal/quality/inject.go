package quality

import (
	"math/rand"
	"sort"
)

// identifier-like fields are never nulled so corrupted rows stay addressable.
var protectedFields = map[string]bool{
	"id":          true,
	"natural_key": true,
}

// Apply runs the four corruption passes of a named profile over rows, in
// fixed order: nulls, duplicates, typos, out-of-range. Passes are independent
// per cell, so one cell can accumulate more than one corruption type.
func Apply(rows []map[string]any, profileName string, rng *rand.Rand) []map[string]any {
	p := Profile(profileName)
	applyNulls(rows, p.NullPct, rng)
	applyDuplicates(rows, p.DuplicatePct, rng)
	applyTypos(rows, p.TypoPct, rng)
	applyOutOfRange(rows, p.OutOfRangePct, rng)
	return rows
}

// sortedFields gives a deterministic column walk order over a row.
func sortedFields(row map[string]any) []string {
	fields := make([]string, 0, len(row))
	for f := range row {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

func applyNulls(rows []map[string]any, pct float64, rng *rand.Rand) {
	if pct <= 0 {
		return
	}
	for _, row := range rows {
		for _, field := range sortedFields(row) {
			if protectedFields[field] {
				continue
			}
			if rng.Float64() < pct {
				row[field] = nil
			}
		}
	}
}

// applyDuplicates copies a value from another row's same column, simulating
// accidental re-entry.
func applyDuplicates(rows []map[string]any, pct float64, rng *rand.Rand) {
	if pct <= 0 || len(rows) < 2 {
		return
	}
	for i, row := range rows {
		for _, field := range sortedFields(row) {
			if protectedFields[field] || row[field] == nil {
				continue
			}
			if rng.Float64() >= pct {
				continue
			}
			other := rng.Intn(len(rows))
			if other == i {
				continue
			}
			if v, ok := rows[other][field]; ok && v != nil {
				row[field] = v
			}
		}
	}
}

func applyTypos(rows []map[string]any, pct float64, rng *rand.Rand) {
	if pct <= 0 {
		return
	}
	for _, row := range rows {
		for _, field := range sortedFields(row) {
			if protectedFields[field] {
				continue
			}
			s, ok := row[field].(string)
			if !ok || len(s) < 2 {
				continue
			}
			if rng.Float64() < pct {
				row[field] = addTypo(s, rng)
			}
		}
	}
}

// addTypo applies one random character-level edit.
func addTypo(s string, rng *rand.Rand) string {
	b := []byte(s)
	pos := rng.Intn(len(b))
	switch rng.Intn(4) {
	case 0: // swap
		if pos < len(b)-1 {
			b[pos], b[pos+1] = b[pos+1], b[pos]
		}
		return string(b)
	case 1: // delete
		return string(append(b[:pos:pos], b[pos+1:]...))
	case 2: // insert
		ch := byte('a' + rng.Intn(26))
		out := make([]byte, 0, len(b)+1)
		out = append(out, b[:pos]...)
		out = append(out, ch)
		out = append(out, b[pos:]...)
		return string(out)
	default: // substitute
		b[pos] = byte('a' + rng.Intn(26))
		return string(b)
	}
}

var outOfRangeFactors = []float64{10, 100, -1, -10}

func applyOutOfRange(rows []map[string]any, pct float64, rng *rand.Rand) {
	if pct <= 0 {
		return
	}
	for _, row := range rows {
		for _, field := range sortedFields(row) {
			if protectedFields[field] {
				continue
			}
			switch v := row[field].(type) {
			case int:
				if rng.Float64() < pct {
					row[field] = int(float64(v) * outOfRangeFactors[rng.Intn(len(outOfRangeFactors))])
				}
			case int64:
				if rng.Float64() < pct {
					row[field] = int64(float64(v) * outOfRangeFactors[rng.Intn(len(outOfRangeFactors))])
				}
			case float64:
				if rng.Float64() < pct {
					row[field] = v * outOfRangeFactors[rng.Intn(len(outOfRangeFactors))]
				}
			}
		}
	}
}
