package loader

import (
	"testing"

	"synthkit/internal/engine"
)

func TestDriverName(t *testing.T) {
	cases := map[string]string{
		"postgres":   "pgx",
		"postgresql": "pgx",
		"MySQL":      "mysql",
		"sqlite":     "sqlite3",
		"sqlite3":    "sqlite3",
	}
	for provider, want := range cases {
		got, err := driverName(provider)
		if err != nil || got != want {
			t.Errorf("driverName(%q) = %q, %v; want %q", provider, got, err, want)
		}
	}

	if _, err := driverName("oracle"); err == nil {
		t.Error("Expected error for unsupported provider")
	}
}

func TestColumnSet(t *testing.T) {
	rows := engine.Dataset{
		{"b": 1, "a": 2},
		{"a": 3, "c": 4},
	}
	cols := columnSet(rows)
	want := []string{"a", "b", "c"}
	if len(cols) != len(want) {
		t.Fatalf("Expected %v, got %v", want, cols)
	}
	for i := range want {
		if cols[i] != want[i] {
			t.Errorf("Column %d: expected %s, got %s", i, want[i], cols[i])
		}
	}
}

func TestQuoteIdent(t *testing.T) {
	pg := &SQLLoader{provider: "postgres"}
	if got := pg.quoteIdent("order"); got != `"order"` {
		t.Errorf("Expected double-quoted identifier, got %s", got)
	}

	my := &SQLLoader{provider: "mysql"}
	if got := my.quoteIdent("order"); got != "`order`" {
		t.Errorf("Expected backtick-quoted identifier, got %s", got)
	}
}
