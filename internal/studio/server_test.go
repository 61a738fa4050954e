package studio

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"synthkit/internal/engine"
	"synthkit/internal/schema"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	root := t.TempDir()

	common := `common_fields:
  - id
  - natural_key
  - record_hash
`
	if err := os.WriteFile(filepath.Join(root, "_common.yml"), []byte(common), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "retail"), 0755); err != nil {
		t.Fatal(err)
	}
	doc := `tables:
  dim_customer:
    fields:
      - customer_id
      - first_name
      - email
      - "*common_fields"
`
	if err := os.WriteFile(filepath.Join(root, "retail", "retail.yml"), []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	clock := func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	eng := engine.New(schema.NewResolver(root)).WithClock(clock)
	return NewServer(eng, nil, 0)
}

func TestHandleGetDomains(t *testing.T) {
	server := newTestServer(t)

	resp, err := server.App().Test(httptest.NewRequest("GET", "/api/domains", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var payload struct {
		Domains map[string][]string `json:"domains"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(payload.Domains["retail"]) != 1 {
		t.Errorf("Expected one retail table, got %v", payload.Domains)
	}
}

func TestHandlePreview(t *testing.T) {
	server := newTestServer(t)

	resp, err := server.App().Test(httptest.NewRequest("GET", "/api/domains/retail/tables/dim_customer/preview?rows=3&seed=7", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var payload struct {
		Rows int              `json:"rows"`
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if payload.Rows != 3 || len(payload.Data) != 3 {
		t.Fatalf("Expected 3 rows, got %d", payload.Rows)
	}
	if payload.Data[0]["id"] != float64(1) {
		t.Errorf("Expected sequential ids, got %v", payload.Data[0]["id"])
	}
}

func TestHandlePreviewUnknownTable(t *testing.T) {
	server := newTestServer(t)

	resp, err := server.App().Test(httptest.NewRequest("GET", "/api/domains/retail/tables/dim_nope/preview", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 404 {
		t.Errorf("Expected 404 for unknown table, got %d", resp.StatusCode)
	}
}

func TestHandleEcosystemsWithoutCatalog(t *testing.T) {
	server := newTestServer(t)

	resp, err := server.App().Test(httptest.NewRequest("GET", "/api/ecosystems", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 404 {
		t.Errorf("Expected 404 without a catalog, got %d", resp.StatusCode)
	}
}

func TestHandleMeta(t *testing.T) {
	server := newTestServer(t)

	resp, err := server.App().Test(httptest.NewRequest("GET", "/api/meta", nil))
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	var payload struct {
		Geographies   []string `json:"geographies"`
		ErrorProfiles []string `json:"error_profiles"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(payload.Geographies) != 5 {
		t.Errorf("Expected 5 geographies, got %v", payload.Geographies)
	}
	if len(payload.ErrorProfiles) != 4 {
		t.Errorf("Expected 4 error profiles, got %v", payload.ErrorProfiles)
	}
}
