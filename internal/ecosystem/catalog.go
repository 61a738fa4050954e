// Package ecosystem coordinates whole-business dataset generation from
// declarative ecosystem definitions.
package ecosystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"synthkit/internal/schema"
)

// Definition describes one business ecosystem: which tables it spans, how
// they relate, and how row volumes scale against the base volume.
type Definition struct {
	Key            string   `yaml:"key"`
	DisplayName    string   `yaml:"display_name"`
	Description    string   `yaml:"description"`
	BusinessType   string   `yaml:"business_type"`
	MasterEntities []string `yaml:"master_entities"`

	CoreTables      map[string][]string `yaml:"core_tables"`
	SupportTables   map[string][]string `yaml:"support_tables"`
	AnalyticsTables map[string][]string `yaml:"analytics_tables"`

	Relationships map[string]string  `yaml:"relationships"`
	VolumeRatios  map[string]float64 `yaml:"volume_ratios"`
}

// TableRef is a fully qualified table inside a definition.
type TableRef struct {
	Domain string
	Table  string
}

// Tables flattens core, support and analytics tables in generation order.
// Within a tier, domains and tables come out sorted so runs are repeatable.
func (d *Definition) Tables() []TableRef {
	var refs []TableRef
	for _, tier := range []map[string][]string{d.CoreTables, d.SupportTables, d.AnalyticsTables} {
		domains := make([]string, 0, len(tier))
		for domain := range tier {
			domains = append(domains, domain)
		}
		sort.Strings(domains)
		for _, domain := range domains {
			tables := append([]string(nil), tier[domain]...)
			sort.Strings(tables)
			for _, table := range tables {
				refs = append(refs, TableRef{Domain: domain, Table: table})
			}
		}
	}
	return refs
}

// Ratio returns the volume ratio for table, defaulting to 1.0 when the
// definition does not mention it.
func (d *Definition) Ratio(table string) float64 {
	if r, ok := d.VolumeRatios[table]; ok {
		return r
	}
	return 1.0
}

// NotFoundError reports a request for an ecosystem the catalog does not hold.
type NotFoundError struct {
	Key   string
	Known []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown ecosystem %q (known: %s)", e.Key, strings.Join(e.Known, ", "))
}

// CatalogIssue records a definition file that could not be used. Loading
// continues past issues so one broken file never hides the rest.
type CatalogIssue struct {
	File   string
	Reason string
}

// Catalog holds the ecosystem definitions found under a directory.
type Catalog struct {
	defs map[string]*Definition
}

// LoadCatalog reads every .yml/.yaml file under dir as a Definition.
// Unreadable or invalid files become issues, not errors.
func LoadCatalog(dir string, schemas *schema.Resolver) (*Catalog, []CatalogIssue, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("reading ecosystems directory %s: %w", dir, err)
	}

	cat := &Catalog{defs: make(map[string]*Definition)}
	var issues []CatalogIssue
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yml" && ext != ".yaml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			issues = append(issues, CatalogIssue{File: entry.Name(), Reason: err.Error()})
			continue
		}
		var def Definition
		if err := yaml.Unmarshal(data, &def); err != nil {
			issues = append(issues, CatalogIssue{File: entry.Name(), Reason: fmt.Sprintf("invalid yaml: %v", err)})
			continue
		}
		if reason := validate(&def, schemas); reason != "" {
			issues = append(issues, CatalogIssue{File: entry.Name(), Reason: reason})
			continue
		}
		cat.defs[def.Key] = &def
	}
	return cat, issues, nil
}

func validate(def *Definition, schemas *schema.Resolver) string {
	if def.Key == "" {
		return "missing key"
	}
	if len(def.Tables()) == 0 {
		return "no tables declared"
	}
	for table, ratio := range def.VolumeRatios {
		if ratio < 0 {
			return fmt.Sprintf("negative volume ratio for %s", table)
		}
	}
	if schemas != nil {
		for _, ref := range def.Tables() {
			if _, err := schemas.LoadTableSchema(ref.Domain, ref.Table); err != nil {
				return fmt.Sprintf("unresolvable table %s.%s: %v", ref.Domain, ref.Table, err)
			}
		}
	}
	return ""
}

// Get returns the definition for key.
func (c *Catalog) Get(key string) (*Definition, error) {
	def, ok := c.defs[key]
	if !ok {
		return nil, &NotFoundError{Key: key, Known: c.Keys()}
	}
	return def, nil
}

// Keys lists the loaded ecosystem keys in sorted order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.defs))
	for k := range c.defs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
