package engine

import "fmt"

// GenerateTwoTables generates a primary and a secondary table and links them:
// the secondary's foreign-key field cycles round-robin through the primary's
// ids, so every secondary row references an existing primary row.
func (e *Engine) GenerateTwoTables(primary, secondary TableSpec, primaryRows, secondaryRows int, opts TwoTableOptions) (map[string]Dataset, error) {
	if secondary.FKField == "" {
		return nil, fmt.Errorf("secondary table %s has no foreign-key field", secondary.Table)
	}

	prim, err := e.Generate(primary.Domain, primary.Table, primaryRows, opts.Options)
	if err != nil {
		return nil, err
	}
	if opts.SCD2 {
		ctx, err := e.newContext(primary.Table, opts.Options)
		if err != nil {
			return nil, err
		}
		prim = SCD2Version(prim, opts.ChangeProb, ctx.Rand, e.now())
	}

	primIDs := make([]any, 0, len(prim))
	for _, r := range prim {
		if v, ok := r["id"]; ok && v != nil {
			primIDs = append(primIDs, v)
		}
	}

	sec, err := e.Generate(secondary.Domain, secondary.Table, secondaryRows, opts.Options)
	if err != nil {
		return nil, err
	}
	for i, r := range sec {
		if len(primIDs) > 0 {
			r[secondary.FKField] = primIDs[i%len(primIDs)]
			r["record_hash"] = ComputeRecordHash(r)
		}
	}

	return map[string]Dataset{
		primary.Table:   prim,
		secondary.Table: sec,
	}, nil
}
