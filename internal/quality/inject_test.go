package quality

import (
	"fmt"
	"math/rand"
	"testing"
)

func makeRows(n int) []map[string]any {
	rows := make([]map[string]any, n)
	for i := range rows {
		rows[i] = map[string]any{
			"id":          i + 1,
			"natural_key": i + 1,
			"full_name":   fmt.Sprintf("Person Number %d", i),
			"email":       fmt.Sprintf("person%d@example.com", i),
			"unit_price":  float64(i) + 0.5,
			"qty":         i + 1,
		}
	}
	return rows
}

func TestProfilePresets(t *testing.T) {
	if p := Profile("none"); p.NullPct != 0 || p.TypoPct != 0 {
		t.Errorf("Expected zero rates for none, got %+v", p)
	}

	light := Profile("light")
	moderate := Profile("moderate")
	heavy := Profile("heavy")
	if !(light.NullPct < moderate.NullPct && moderate.NullPct < heavy.NullPct) {
		t.Error("Expected null rates to escalate across presets")
	}
	if !(light.TypoPct < moderate.TypoPct && moderate.TypoPct < heavy.TypoPct) {
		t.Error("Expected typo rates to escalate across presets")
	}

	if p := Profile("bogus"); p != Profile("none") {
		t.Errorf("Expected unknown profile to map to none, got %+v", p)
	}
}

func TestApplyNonePreservesRows(t *testing.T) {
	rows := makeRows(20)
	want := fmt.Sprintf("%v", rows)

	Apply(rows, "none", rand.New(rand.NewSource(1)))
	if got := fmt.Sprintf("%v", rows); got != want {
		t.Error("Expected none profile to leave rows untouched")
	}
}

func TestApplyProtectsIdentifiers(t *testing.T) {
	rows := makeRows(200)
	Apply(rows, "heavy", rand.New(rand.NewSource(2)))

	for i, row := range rows {
		if row["id"] == nil || row["natural_key"] == nil {
			t.Fatalf("Row %d lost a protected identifier: %+v", i, row)
		}
		if row["id"] != i+1 {
			t.Fatalf("Row %d id mutated to %v", i, row["id"])
		}
	}
}

func TestApplyHeavyIntroducesNulls(t *testing.T) {
	rows := makeRows(500)
	Apply(rows, "heavy", rand.New(rand.NewSource(3)))

	nulls := 0
	cells := 0
	for _, row := range rows {
		for field, v := range row {
			if protectedFields[field] {
				continue
			}
			cells++
			if v == nil {
				nulls++
			}
		}
	}
	rate := float64(nulls) / float64(cells)
	// heavy nulls 20% of cells; later passes never un-null.
	if rate < 0.12 || rate > 0.30 {
		t.Errorf("Expected null rate near 0.20, got %.3f", rate)
	}
}

func TestApplyDeterminism(t *testing.T) {
	a := makeRows(50)
	b := makeRows(50)
	Apply(a, "moderate", rand.New(rand.NewSource(7)))
	Apply(b, "moderate", rand.New(rand.NewSource(7)))

	if fmt.Sprintf("%v", a) != fmt.Sprintf("%v", b) {
		t.Error("Expected identical corruption for identical seeds")
	}
}

func TestAddTypoChangesString(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	s := "reference string"
	changed := 0
	for i := 0; i < 50; i++ {
		out := addTypo(s, rng)
		if len(out) < len(s)-1 || len(out) > len(s)+1 {
			t.Fatalf("Typo changed length too much: %q -> %q", s, out)
		}
		if out != s {
			changed++
		}
	}
	if changed == 0 {
		t.Error("Expected at least some typos to alter the string")
	}
}

func TestInjectBudgetCellMode(t *testing.T) {
	rows := makeRows(100)
	clean := makeRows(100)

	InjectBudget(rows, BudgetProfile{
		GlobalErrorPct: 10,
		Mode:           "cell",
		TypeWeights:    map[string]float64{"nulls": 1},
	}, rand.New(rand.NewSource(5)))

	diff := 0
	for i := range rows {
		for field := range clean[i] {
			if fmt.Sprintf("%v", rows[i][field]) != fmt.Sprintf("%v", clean[i][field]) {
				diff++
			}
		}
	}
	// 100 rows x 4 unprotected cols at 10% = 40 corrupted cells.
	if diff != 40 {
		t.Errorf("Expected exactly 40 corrupted cells, got %d", diff)
	}
}

func TestInjectBudgetRowMode(t *testing.T) {
	rows := makeRows(100)
	clean := makeRows(100)

	InjectBudget(rows, BudgetProfile{
		GlobalErrorPct: 20,
		Mode:           "row",
		TypeWeights:    map[string]float64{"nulls": 1},
	}, rand.New(rand.NewSource(6)))

	affected := 0
	for i := range rows {
		for field := range clean[i] {
			if fmt.Sprintf("%v", rows[i][field]) != fmt.Sprintf("%v", clean[i][field]) {
				affected++
				break
			}
		}
	}
	// 20% of 100 rows, one column each.
	if affected != 20 {
		t.Errorf("Expected exactly 20 affected rows, got %d", affected)
	}
}

func TestInjectBudgetZeroBudgetIsNoop(t *testing.T) {
	rows := makeRows(10)
	want := fmt.Sprintf("%v", rows)
	InjectBudget(rows, BudgetProfile{GlobalErrorPct: 0}, rand.New(rand.NewSource(8)))
	if fmt.Sprintf("%v", rows) != want {
		t.Error("Expected zero budget to leave rows untouched")
	}
}
