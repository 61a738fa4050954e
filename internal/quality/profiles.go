// Package quality degrades finished datasets with configurable error
// profiles: nulls, duplicates, typos and out-of-range values.
package quality

// ErrorProfile holds independent corruption probabilities, each in [0,1].
type ErrorProfile struct {
	NullPct       float64
	DuplicatePct  float64
	TypoPct       float64
	OutOfRangePct float64
}

// Named presets, monotonically increasing in every dimension.
var profiles = map[string]ErrorProfile{
	"none":     {},
	"light":    {NullPct: 0.05, DuplicatePct: 0.02, TypoPct: 0.03, OutOfRangePct: 0.01},
	"moderate": {NullPct: 0.1, DuplicatePct: 0.05, TypoPct: 0.07, OutOfRangePct: 0.03},
	"heavy":    {NullPct: 0.2, DuplicatePct: 0.1, TypoPct: 0.15, OutOfRangePct: 0.08},
}

// Profile resolves a named preset. Unknown names resolve to "none".
func Profile(name string) ErrorProfile {
	if p, ok := profiles[name]; ok {
		return p
	}
	return ErrorProfile{}
}

// ProfileNames lists the supported preset names.
func ProfileNames() []string {
	return []string{"none", "light", "moderate", "heavy"}
}
