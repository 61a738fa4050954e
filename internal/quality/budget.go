package quality

import (
	"math/rand"
	"sort"
)

// BudgetProfile is the alternative corruption mode: a single error budget
// spent across the rows x columns grid (cell mode) or across whole rows
// (row mode, one column per affected row).
type BudgetProfile struct {
	GlobalErrorPct float64 // percent of the grid to corrupt, 0-100
	Mode           string  // "cell" or "row"
	TypeWeights    map[string]float64
}

var budgetErrorTypes = []string{"nulls", "outliers", "typo", "duplicate"}

func (p BudgetProfile) weights() ([]string, []float64) {
	w := p.TypeWeights
	if len(w) == 0 {
		w = map[string]float64{}
		for _, t := range budgetErrorTypes {
			w[t] = 1
		}
	}
	types := make([]string, 0, len(w))
	for t := range w {
		types = append(types, t)
	}
	sort.Strings(types)
	vals := make([]float64, len(types))
	var sum float64
	for i, t := range types {
		vals[i] = w[t]
		sum += w[t]
	}
	for i := range vals {
		vals[i] /= sum
	}
	return types, vals
}

func (p BudgetProfile) sampleType(rng *rand.Rand) string {
	types, vals := p.weights()
	r := rng.Float64()
	var acc float64
	for i, t := range types {
		acc += vals[i]
		if r < acc {
			return t
		}
	}
	return types[len(types)-1]
}

// InjectBudget corrupts rows in place according to a budget profile.
func InjectBudget(rows []map[string]any, profile BudgetProfile, rng *rand.Rand) []map[string]any {
	if profile.GlobalErrorPct <= 0 || len(rows) == 0 {
		return rows
	}
	var cols []string
	for _, c := range sortedFields(rows[0]) {
		if !protectedFields[c] {
			cols = append(cols, c)
		}
	}
	if len(cols) == 0 {
		return rows
	}

	if profile.Mode == "row" {
		n := int(float64(len(rows)) * profile.GlobalErrorPct / 100.0)
		for _, r := range rng.Perm(len(rows))[:min(n, len(rows))] {
			col := cols[rng.Intn(len(cols))]
			rows[r][col] = mutate(rows[r][col], profile.sampleType(rng), rng)
		}
		return rows
	}

	totalCells := len(rows) * len(cols)
	n := int(float64(totalCells) * profile.GlobalErrorPct / 100.0)
	for _, idx := range rng.Perm(totalCells)[:min(n, totalCells)] {
		r := idx / len(cols)
		col := cols[idx%len(cols)]
		rows[r][col] = mutate(rows[r][col], profile.sampleType(rng), rng)
	}
	return rows
}

func mutate(value any, errType string, rng *rand.Rand) any {
	switch errType {
	case "nulls":
		return nil
	case "outliers":
		switch v := value.(type) {
		case int:
			if v == 0 {
				return 999999
			}
			return v * 10
		case int64:
			if v == 0 {
				return int64(999999)
			}
			return v * 10
		case float64:
			if v == 0 {
				return float64(999999)
			}
			return v * 10
		}
		return value
	case "typo":
		if s, ok := value.(string); ok && len(s) > 0 {
			pos := rng.Intn(len(s))
			return s[:pos] + "#" + s[pos+1:]
		}
		return value
	default:
		// duplicate handled at dataset level by the profile passes
		return value
	}
}
