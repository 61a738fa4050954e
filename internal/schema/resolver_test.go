package schema

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeCatalog(t *testing.T) *Resolver {
	t.Helper()
	root := t.TempDir()

	common := `common_fields:
  - id
  - record_hash
  - notes
`
	if err := os.WriteFile(filepath.Join(root, "_common.yml"), []byte(common), 0644); err != nil {
		t.Fatal(err)
	}

	if err := os.MkdirAll(filepath.Join(root, "retail"), 0755); err != nil {
		t.Fatal(err)
	}
	main := `tables:
  dim_customer:
    fields:
      - customer_id
      - first_name
      - id
      - "*common_fields"
`
	if err := os.WriteFile(filepath.Join(root, "retail", "retail.yml"), []byte(main), 0644); err != nil {
		t.Fatal(err)
	}
	extra := `tables:
  dim_store:
    fields:
      - store_name
      - "*common_fields"
`
	if err := os.WriteFile(filepath.Join(root, "retail", "extra.yml"), []byte(extra), 0644); err != nil {
		t.Fatal(err)
	}

	return NewResolver(root)
}

func TestLoadTableSchemaExpandsCommonFields(t *testing.T) {
	r := writeCatalog(t)

	ts, err := r.LoadTableSchema("retail", "dim_customer")
	if err != nil {
		t.Fatalf("LoadTableSchema failed: %v", err)
	}

	want := []string{"customer_id", "first_name", "id", "record_hash", "notes"}
	if len(ts.Fields) != len(want) {
		t.Fatalf("Expected %d fields, got %v", len(want), ts.Fields)
	}
	for i, f := range want {
		if ts.Fields[i] != f {
			t.Errorf("Field %d: expected %s, got %s", i, f, ts.Fields[i])
		}
	}
}

func TestLoadTableSchemaAcrossDocuments(t *testing.T) {
	r := writeCatalog(t)

	ts, err := r.LoadTableSchema("retail", "dim_store")
	if err != nil {
		t.Fatalf("Expected table from secondary document, got %v", err)
	}
	if ts.Fields[0] != "store_name" {
		t.Errorf("Unexpected field order %v", ts.Fields)
	}
}

func TestLoadTableSchemaNotFound(t *testing.T) {
	r := writeCatalog(t)

	_, err := r.LoadTableSchema("retail", "dim_missing")
	if err == nil {
		t.Fatal("Expected error for missing table")
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Expected NotFoundError, got %T", err)
	}
	if nf.Domain != "retail" || nf.Table != "dim_missing" {
		t.Errorf("Unexpected error detail %+v", nf)
	}

	_, err = r.LoadTableSchema("nodomain", "dim_customer")
	if !errors.As(err, &nf) {
		t.Fatalf("Expected NotFoundError for missing domain, got %v", err)
	}
	if nf.Table != "" {
		t.Errorf("Domain miss should not name a table, got %+v", nf)
	}
}

func TestListDomainsAndTables(t *testing.T) {
	r := writeCatalog(t)

	domains, issues := r.ListDomains()
	if len(issues) != 0 {
		t.Fatalf("Expected no issues, got %v", issues)
	}
	tables, ok := domains["retail"]
	if !ok {
		t.Fatalf("Expected retail domain, got %v", domains)
	}
	// main document first, then secondary documents sorted.
	if tables[0] != "dim_customer" || tables[1] != "dim_store" {
		t.Errorf("Unexpected table order %v", tables)
	}
}

func TestListTablesReportsBrokenDocuments(t *testing.T) {
	r := writeCatalog(t)

	path := filepath.Join(r.root, "retail", "broken.yml")
	if err := os.WriteFile(path, []byte("tables: [not a map"), 0644); err != nil {
		t.Fatal(err)
	}

	tables, issues, err := r.ListTables("retail")
	if err != nil {
		t.Fatalf("ListTables failed: %v", err)
	}
	if len(tables) != 2 {
		t.Errorf("Expected parsable tables to survive, got %v", tables)
	}
	if len(issues) != 1 || issues[0].File != "broken.yml" {
		t.Errorf("Expected broken.yml reported, got %v", issues)
	}
}

func TestCommonFieldsMissingFileIsEmpty(t *testing.T) {
	r := NewResolver(t.TempDir())
	fields, err := r.CommonFields()
	if err != nil {
		t.Fatalf("Expected missing _common.yml to be tolerated, got %v", err)
	}
	if len(fields) != 0 {
		t.Errorf("Expected no common fields, got %v", fields)
	}
}
