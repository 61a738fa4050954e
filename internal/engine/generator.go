// Package engine assembles synthetic datasets: declared fields via the
// synthesizer rule chain, a fixed metadata envelope, optional error
// injection, SCD2 expansion and multi-table stitching.
package engine

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"synthkit/internal/quality"
	"synthkit/internal/schema"
	"synthkit/internal/synth"
)

// SeedEnv supplies the generation seed when no explicit seed is passed.
const SeedEnv = "SYNTH_SEED"

// defaultSeed keeps generation reproducible even with no seed anywhere.
const defaultSeed = 42

// naturalKeyFields is the probe order for inferring a row's natural key.
var naturalKeyFields = []string{"employee_id", "transaction_id", "ticket_id", "customer_id"}

// assemblerOwned marks envelope fields the assembler sets authoritatively.
// They are excluded from name-driven synthesis so batch_id never becomes a
// random "_id" integer and processing_status never a random category.
var assemblerOwned = map[string]bool{
	"id":                  true,
	"natural_key":         true,
	"tenant_id":           true,
	"source_system":       true,
	"source_table":        true,
	"batch_id":            true,
	"batch_time_utc":      true,
	"is_active":           true,
	"valid_to_utc":        true,
	"created_by":          true,
	"updated_at_utc":      true,
	"updated_by":          true,
	"geo_country":         true,
	"geo_region":          true,
	"geo_city":            true,
	"geo_lat":             true,
	"geo_lon":             true,
	"currency_code":       true,
	"fx_rate_to_usd":      true,
	"processing_status":   true,
	"dq_completeness_pct": true,
	"dq_validity_pct":     true,
	"record_hash":         true,
	"tags":                true,
}

// currencyByCountry maps a sampled city's country onto its trading currency.
var currencyByCountry = map[string]string{
	"EC": "USD",
	"CO": "COP",
	"MX": "MXN",
	"ES": "EUR",
	"US": "USD",
}

// statusNullExempt lists envelope fields whose null value is expected and
// must not flip processing_status to warn.
var statusNullExempt = map[string]bool{
	"valid_to_utc": true,
	"tags":         true,
	"notes":        true,
}

type Engine struct {
	schemas *schema.Resolver
	now     func() time.Time
}

func New(schemas *schema.Resolver) *Engine {
	return &Engine{schemas: schemas, now: time.Now}
}

// WithClock fixes the engine clock; generation is then fully reproducible
// for a given seed.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

func (e *Engine) Schemas() *schema.Resolver {
	return e.schemas
}

// ResolveSeed applies the seed precedence: explicit, then SEED env, then the
// fixed default.
func ResolveSeed(explicit *int64) int64 {
	if explicit != nil {
		return *explicit
	}
	if v := os.Getenv(SeedEnv); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return seed
		}
	}
	return defaultSeed
}

func (e *Engine) newContext(table string, opts Options) (*synth.Context, error) {
	if opts.Geography != "" && !synth.KnownGeography(opts.Geography) {
		return nil, fmt.Errorf("unknown geography context: %s", opts.Geography)
	}
	ctx := synth.NewContext(ResolveSeed(opts.Seed), e.now())
	if opts.Geography != "" {
		ctx.Geography = opts.Geography
	}
	ctx.Dates = opts.DateRange
	return ctx.WithTable(table), nil
}

// Generate produces exactly rows records for one table. The returned dataset
// is owned by the caller; the engine keeps no reference to it.
func (e *Engine) Generate(domain, table string, rows int, opts Options) (Dataset, error) {
	ctx, err := e.newContext(table, opts)
	if err != nil {
		return nil, err
	}
	return e.generate(ctx, domain, table, rows, opts)
}

func (e *Engine) generate(ctx *synth.Context, domain, table string, rows int, opts Options) (Dataset, error) {
	if rows < 0 {
		return nil, fmt.Errorf("row count must not be negative, got %d", rows)
	}
	ts, err := e.schemas.LoadTableSchema(domain, table)
	if err != nil {
		return nil, err
	}

	batchTime := e.now().UTC().Format(time.RFC3339)
	batchID := uuid.NewSHA1(uuid.NameSpaceOID, []byte(domain+"/"+table+"@"+batchTime)).String()
	city := ctx.SampleCity()

	business := make([]string, 0, len(ts.Fields))
	for _, f := range ts.Fields {
		if !assemblerOwned[f] {
			business = append(business, f)
		}
	}

	out := make(Dataset, 0, rows)
	for i := 0; i < rows; i++ {
		row := synth.GenerateRow(ctx, business)
		e.fillEnvelope(row, i+1, domain, table, batchID, batchTime, city)
		out = append(out, row)
	}

	corrupted := false
	if opts.ErrorProfile != "" && opts.ErrorProfile != "none" {
		out = quality.Apply(out, opts.ErrorProfile, ctx.Rand)
		corrupted = true
	}
	if opts.Budget != nil {
		out = quality.InjectBudget(out, *opts.Budget, ctx.Rand)
		corrupted = true
	}
	if corrupted {
		for _, row := range out {
			if rowHasNulls(row) {
				row["processing_status"] = "warn"
			}
		}
	}

	// DQ scores and hash go last so they reflect final content.
	for _, row := range out {
		completeness := completenessPct(row, ts.Fields)
		row["dq_completeness_pct"] = completeness
		row["dq_validity_pct"] = completeness
		row["record_hash"] = ComputeRecordHash(row)
	}

	return out, nil
}

// fillEnvelope backfills the cross-table metadata fields. The surrogate id is
// always sequential; every other field is only set when the schema did not
// declare it or the synthesizer left it null.
func (e *Engine) fillEnvelope(row Row, id int, domain, table, batchID, batchTime string, city synth.City) {
	row["id"] = id

	if isNull(row, "natural_key") {
		row["natural_key"] = inferNaturalKey(row, id)
	}

	currency, ok := currencyByCountry[city.Country]
	if !ok {
		currency = "USD"
	}
	fxRate, err := synth.FXRate("USD", currency)
	if err != nil {
		fxRate = 1.0
	}

	defaults := []struct {
		field string
		value any
	}{
		{"tenant_id", 1},
		{"source_system", domain},
		{"source_table", table},
		{"batch_id", batchID},
		{"batch_time_utc", batchTime},
		{"is_active", true},
		{"valid_from_utc", batchTime},
		{"created_at_utc", batchTime},
		{"created_by", "synthkit"},
		{"updated_at_utc", batchTime},
		{"updated_by", "synthkit"},
		{"pii_sensitivity", "low"},
		{"geo_country", city.Country},
		{"geo_region", city.Region},
		{"geo_city", city.Name},
		{"geo_lat", city.Lat},
		{"geo_lon", city.Lon},
		{"currency_code", currency},
		{"fx_rate_to_usd", fxRate},
		{"processing_status", "ok"},
	}
	for _, d := range defaults {
		if isNull(row, d.field) {
			row[d.field] = d.value
		}
	}

	// nullable by design
	for _, f := range []string{"valid_to_utc", "tags", "notes"} {
		if _, ok := row[f]; !ok {
			row[f] = nil
		}
	}
}

func isNull(row Row, field string) bool {
	v, ok := row[field]
	return !ok || v == nil
}

func inferNaturalKey(row Row, id int) any {
	for _, f := range naturalKeyFields {
		if v, ok := row[f]; ok && v != nil {
			return v
		}
	}
	return id
}

func rowHasNulls(row Row) bool {
	for field, v := range row {
		if statusNullExempt[field] {
			continue
		}
		if v == nil {
			return true
		}
	}
	return false
}

// dqSelfFields are written after the DQ census and therefore count as
// non-null in the stored score, keeping it reproducible from the finished
// row. record_hash already skips them for the same reason.
var dqSelfFields = map[string]bool{
	"dq_completeness_pct": true,
	"dq_validity_pct":     true,
	"record_hash":         true,
}

// completenessPct is the share of declared fields that are non-null, as a
// percentage rounded to two decimals. The assembler always fills the dq/hash
// fields afterwards, so they count as non-null here. Validity mirrors it: no
// independent validity rule exists.
func completenessPct(row Row, declared []string) float64 {
	if len(declared) == 0 {
		return 100.0
	}
	nonNull := 0
	for _, f := range declared {
		if dqSelfFields[f] {
			nonNull++
			continue
		}
		if v, ok := row[f]; ok && v != nil {
			nonNull++
		}
	}
	pct := float64(nonNull) / float64(len(declared)) * 100
	return math.Round(pct*100) / 100
}
