package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
)

// hashExclude lists the fields left out of the record hash: the hash itself
// and the DQ scores derived after hashing-relevant content is final.
var hashExclude = map[string]bool{
	"record_hash":         true,
	"dq_completeness_pct": true,
	"dq_validity_pct":     true,
}

// ComputeRecordHash digests every field except the DQ/hash fields, walking
// keys in sorted order so the digest is stable.
func ComputeRecordHash(row Row) string {
	keys := make([]string, 0, len(row))
	for k := range row {
		if hashExclude[k] {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := sha256.New()
	for _, k := range keys {
		fmt.Fprintf(h, "%s=%v;", k, row[k])
	}
	return hex.EncodeToString(h.Sum(nil))
}
