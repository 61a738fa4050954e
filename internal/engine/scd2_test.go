package engine

import (
	"testing"
)

func TestGenerateSCD2Expansion(t *testing.T) {
	eng := newTestEngine(t)

	data, err := eng.GenerateSCD2("retail", "dim_customer", 100, 0.5, Options{Seed: seedOf(10)})
	if err != nil {
		t.Fatalf("GenerateSCD2 failed: %v", err)
	}
	if len(data) < 100 || len(data) > 200 {
		t.Fatalf("Expected between 100 and 200 versioned rows, got %d", len(data))
	}
	if len(data) == 100 {
		t.Error("Expected 0.5 change probability to version some rows")
	}
}

func TestSCD2OneOpenVersionPerKey(t *testing.T) {
	eng := newTestEngine(t)

	data, err := eng.GenerateSCD2("retail", "dim_customer", 80, 0.4, Options{Seed: seedOf(11)})
	if err != nil {
		t.Fatal(err)
	}

	open := make(map[any]int)
	closed := make(map[any]int)
	for _, row := range data {
		key := row["natural_key"]
		if row["is_active"] == true {
			if row["valid_to_utc"] != nil {
				t.Fatal("Open version must have nil valid_to_utc")
			}
			open[key]++
		} else {
			if row["valid_to_utc"] == nil {
				t.Fatal("Closed version must carry a valid_to_utc stamp")
			}
			closed[key]++
		}
	}

	for key, n := range open {
		if n != 1 {
			t.Errorf("Key %v has %d open versions, expected 1", key, n)
		}
	}
	for key := range closed {
		if open[key] != 1 {
			t.Errorf("Key %v has closed versions but no open one", key)
		}
	}
}

func TestSCD2ChangedVersionDiffers(t *testing.T) {
	eng := newTestEngine(t)

	data, err := eng.GenerateSCD2("retail", "dim_customer", 50, 1.0, Options{Seed: seedOf(12)})
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 100 {
		t.Fatalf("Expected every row versioned at probability 1.0, got %d rows", len(data))
	}

	for i := 0; i < len(data); i += 2 {
		old, cur := data[i], data[i+1]
		if old["natural_key"] != cur["natural_key"] {
			t.Fatal("Version pair must share a natural key")
		}
		if old["record_hash"] == cur["record_hash"] {
			t.Error("Changed version must have a different record hash")
		}
	}
}

func TestSCD2ZeroProbabilityIsPassthrough(t *testing.T) {
	eng := newTestEngine(t)

	data, err := eng.GenerateSCD2("retail", "dim_customer", 30, 0.0, Options{Seed: seedOf(13)})
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 30 {
		t.Fatalf("Expected no expansion at probability 0, got %d rows", len(data))
	}
	for _, row := range data {
		if row["is_active"] != true || row["valid_to_utc"] != nil {
			t.Error("Expected every row open at probability 0")
		}
	}
}
