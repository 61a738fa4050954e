package ecosystem

import (
	"fmt"
	"math"
	"time"

	"synthkit/internal/engine"
	"synthkit/internal/i18n"
)

// Phase names the orchestrator's current stage. Phases advance strictly
// forward; a run that produced empty tables still ends in PhaseDone.
type Phase string

const (
	PhasePending     Phase = "pending"
	PhaseCore        Phase = "generating_core"
	PhaseSupport     Phase = "generating_support"
	PhaseAnalytics   Phase = "generating_analytics"
	PhaseTranslating Phase = "translating"
	PhaseDone        Phase = "done"
)

// Summary describes one completed ecosystem run.
type Summary struct {
	EcosystemKey        string         `json:"ecosystem_key"`
	Name                string         `json:"name"`
	Description         string         `json:"description"`
	MasterEntities      []string       `json:"master_entities"`
	BaseVolume          int            `json:"base_volume"`
	TotalTables         int            `json:"total_tables"`
	TotalRecords        int            `json:"total_records"`
	TablesSummary       map[string]int `json:"tables_summary"`
	GenerationTimestamp string         `json:"generation_timestamp"`
}

// RunOptions configures an orchestrated run. Engine options apply uniformly
// to every table in the ecosystem.
type RunOptions struct {
	engine.Options
	// TranslateTo renames columns after generation, e.g. "es". Empty skips
	// translation.
	TranslateTo string
	// Progress, when set, receives phase transitions.
	Progress func(phase Phase)
	// OnTable, when set, receives each table's outcome as it finishes.
	OnTable func(ref TableRef, rows int, err error)
}

// Orchestrator drives multi-table generation from a catalog definition.
type Orchestrator struct {
	catalog *Catalog
	engine  *engine.Engine
	now     func() time.Time
}

// NewOrchestrator wires a catalog to an engine. The clock is overridable for
// deterministic summaries in tests.
func NewOrchestrator(catalog *Catalog, eng *engine.Engine) *Orchestrator {
	return &Orchestrator{catalog: catalog, engine: eng, now: time.Now}
}

// WithClock replaces the summary timestamp source.
func (o *Orchestrator) WithClock(now func() time.Time) *Orchestrator {
	o.now = now
	return o
}

// Volume scales baseVolume by the definition's ratio for table. A zero ratio
// or non-positive product means the table is skipped; anything positive
// yields at least one row.
func Volume(baseVolume int, ratio float64) int {
	raw := float64(baseVolume) * ratio
	if raw <= 0 {
		return 0
	}
	v := int(math.Floor(raw))
	if v < 1 {
		v = 1
	}
	return v
}

// Generate runs the full ecosystem keyed by key at baseVolume. One failing
// table yields an empty dataset for that table and the run continues; the
// only hard errors are an unknown key and a non-positive base volume.
func (o *Orchestrator) Generate(key string, baseVolume int, opts RunOptions) (map[string]engine.Dataset, *Summary, error) {
	def, err := o.catalog.Get(key)
	if err != nil {
		return nil, nil, err
	}
	if baseVolume <= 0 {
		return nil, nil, fmt.Errorf("base volume must be positive, got %d", baseVolume)
	}

	progress := opts.Progress
	if progress == nil {
		progress = func(Phase) {}
	}
	onTable := opts.OnTable
	if onTable == nil {
		onTable = func(TableRef, int, error) {}
	}
	progress(PhasePending)

	datasets := make(map[string]engine.Dataset)
	tiers := []struct {
		phase  Phase
		tables map[string][]string
	}{
		{PhaseCore, def.CoreTables},
		{PhaseSupport, def.SupportTables},
		{PhaseAnalytics, def.AnalyticsTables},
	}
	for _, tier := range tiers {
		progress(tier.phase)
		for _, ref := range tierRefs(tier.tables) {
			volume := Volume(baseVolume, def.Ratio(ref.Table))
			if volume == 0 {
				continue
			}
			data, err := o.engine.Generate(ref.Domain, ref.Table, volume, opts.Options)
			if err != nil {
				datasets[ref.Table] = engine.Dataset{}
				onTable(ref, 0, err)
				continue
			}
			datasets[ref.Table] = data
			onTable(ref, len(data), nil)
		}
	}

	if opts.TranslateTo != "" {
		progress(PhaseTranslating)
		for table, data := range datasets {
			translated, err := i18n.TranslateDataset(data, opts.TranslateTo)
			if err != nil {
				continue
			}
			datasets[table] = translated
		}
	}

	summary := &Summary{
		EcosystemKey:        def.Key,
		Name:                def.DisplayName,
		Description:         def.Description,
		MasterEntities:      append([]string(nil), def.MasterEntities...),
		BaseVolume:          baseVolume,
		TotalTables:         len(datasets),
		TablesSummary:       make(map[string]int, len(datasets)),
		GenerationTimestamp: o.now().UTC().Format(time.RFC3339),
	}
	for table, data := range datasets {
		summary.TablesSummary[table] = len(data)
		summary.TotalRecords += len(data)
	}
	progress(PhaseDone)
	return datasets, summary, nil
}

func tierRefs(tier map[string][]string) []TableRef {
	d := Definition{CoreTables: tier}
	return d.Tables()
}
