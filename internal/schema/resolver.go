package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// CommonFieldsToken is the macro token that expands to the shared common-field
// set declared in _common.yml at the schemas root.
const CommonFieldsToken = "*common_fields"

type TableSchema struct {
	Domain string
	Table  string
	Fields []string
}

// NotFoundError is returned when a domain directory or table key does not exist.
type NotFoundError struct {
	Domain string
	Table  string
}

func (e *NotFoundError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("domain not found: %s", e.Domain)
	}
	return fmt.Sprintf("table %s not found in domain %s", e.Table, e.Domain)
}

// CatalogIssue records a schema document that failed to parse during catalog
// scanning. Listing is best-effort: issues are reported, not raised.
type CatalogIssue struct {
	Domain string
	File   string
	Reason string
}

type document struct {
	Tables map[string]tableDef `yaml:"tables"`
}

type tableDef struct {
	Fields []string `yaml:"fields"`
}

type Resolver struct {
	root string
}

func NewResolver(root string) *Resolver {
	return &Resolver{root: root}
}

// CommonFields loads the shared common-field set from _common.yml.
func (r *Resolver) CommonFields() ([]string, error) {
	data, err := os.ReadFile(filepath.Join(r.root, "_common.yml"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read common fields: %w", err)
	}

	var doc struct {
		CommonFields []string `yaml:"common_fields"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse _common.yml: %w", err)
	}
	return doc.CommonFields, nil
}

// LoadTableSchema resolves a table's field list with the common-fields macro
// expanded and duplicates removed, first occurrence wins.
func (r *Resolver) LoadTableSchema(domain, table string) (*TableSchema, error) {
	files, err := r.domainFiles(domain)
	if err != nil {
		return nil, err
	}

	for _, file := range files {
		doc, err := r.readDocument(file)
		if err != nil {
			continue
		}
		def, ok := doc.Tables[table]
		if !ok {
			continue
		}
		fields, err := r.expandFields(def.Fields)
		if err != nil {
			return nil, err
		}
		return &TableSchema{Domain: domain, Table: table, Fields: fields}, nil
	}

	return nil, &NotFoundError{Domain: domain, Table: table}
}

// ListDomains returns every domain that has at least one parsable table,
// alongside the documents that failed to parse.
func (r *Resolver) ListDomains() (map[string][]string, []CatalogIssue) {
	result := make(map[string][]string)
	var issues []CatalogIssue

	entries, err := os.ReadDir(r.root)
	if err != nil {
		return result, issues
	}

	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), "_") {
			continue
		}
		tables, domainIssues, err := r.ListTables(entry.Name())
		issues = append(issues, domainIssues...)
		if err != nil || len(tables) == 0 {
			continue
		}
		result[entry.Name()] = tables
	}

	return result, issues
}

// ListTables returns the table names declared across a domain's schema
// documents, skipping documents that fail to parse and reporting them.
func (r *Resolver) ListTables(domain string) ([]string, []CatalogIssue, error) {
	files, err := r.domainFiles(domain)
	if err != nil {
		return nil, nil, err
	}

	var tables []string
	var issues []CatalogIssue
	seen := make(map[string]bool)

	for _, file := range files {
		doc, err := r.readDocument(file)
		if err != nil {
			issues = append(issues, CatalogIssue{Domain: domain, File: filepath.Base(file), Reason: err.Error()})
			continue
		}
		names := make([]string, 0, len(doc.Tables))
		for name := range doc.Tables {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if !seen[name] {
				seen[name] = true
				tables = append(tables, name)
			}
		}
	}

	return tables, issues, nil
}

// domainFiles lists the .yml documents of a domain, the main <domain>.yml first.
func (r *Resolver) domainFiles(domain string) ([]string, error) {
	domainDir := filepath.Join(r.root, domain)
	info, err := os.Stat(domainDir)
	if err != nil || !info.IsDir() {
		return nil, &NotFoundError{Domain: domain}
	}

	entries, err := os.ReadDir(domainDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read domain directory %s: %w", domainDir, err)
	}

	var files []string
	main := filepath.Join(domainDir, domain+".yml")
	if _, err := os.Stat(main); err == nil {
		files = append(files, main)
	}
	var rest []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, "_") || !strings.HasSuffix(name, ".yml") {
			continue
		}
		full := filepath.Join(domainDir, name)
		if full == main {
			continue
		}
		rest = append(rest, full)
	}
	sort.Strings(rest)
	return append(files, rest...), nil
}

func (r *Resolver) readDocument(path string) (*document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// expandFields replaces the common-fields macro token and deduplicates,
// preserving first-occurrence order.
func (r *Resolver) expandFields(raw []string) ([]string, error) {
	var out []string
	for _, item := range raw {
		token := strings.Trim(strings.TrimSpace(item), `"'`)
		if token == CommonFieldsToken {
			common, err := r.CommonFields()
			if err != nil {
				return nil, err
			}
			out = append(out, common...)
			continue
		}
		out = append(out, token)
	}

	seen := make(map[string]bool, len(out))
	dedup := make([]string, 0, len(out))
	for _, f := range out {
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		dedup = append(dedup, f)
	}
	return dedup, nil
}
