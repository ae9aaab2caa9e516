package naming

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Resolver assigns unique output names within one batch. Names are compared
// case-insensitively; the set grows monotonically and is discarded with the
// batch. Not safe for concurrent use, matching the strictly sequential batch
// contract.
type Resolver struct {
	seen map[string]struct{}
}

// NewResolver creates a Resolver with an empty seen-name set.
func NewResolver() *Resolver {
	return &Resolver{seen: make(map[string]struct{})}
}

// Resolve returns the candidate name unchanged if it is still free, otherwise
// probes {stem}_1{ext}, {stem}_2{ext}, ... in increasing order until an
// unused name is found. The accepted name is recorded before returning, so a
// given input ordering always yields the same output names.
func (r *Resolver) Resolve(candidate string) string {
	if _, taken := r.seen[strings.ToLower(candidate)]; !taken {
		r.seen[strings.ToLower(candidate)] = struct{}{}
		return candidate
	}

	ext := filepath.Ext(candidate)
	base := strings.TrimSuffix(candidate, ext)
	for i := 1; ; i++ {
		probe := fmt.Sprintf("%s_%d%s", base, i, ext)
		if _, taken := r.seen[strings.ToLower(probe)]; !taken {
			r.seen[strings.ToLower(probe)] = struct{}{}
			return probe
		}
	}
}
