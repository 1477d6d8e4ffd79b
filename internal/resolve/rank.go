package resolve

import "sort"

// Policy holds the ranking thresholds. The defaults are tuning values, not
// domain invariants, so they stay configurable.
type Policy struct {
	// MaxRootAreaFraction rejects near-full-screen containers: candidates
	// larger than this fraction of the root area are excluded, unless the
	// filter would leave nothing usable.
	MaxRootAreaFraction float64 `yaml:"max-root-area-fraction" json:"maxRootAreaFraction"`

	// MinArea is the square-unit floor below which a candidate is kept
	// only as a fallback, never preferred.
	MinArea float64 `yaml:"min-area" json:"minArea"`
}

// DefaultPolicy returns the stock thresholds.
func DefaultPolicy() Policy {
	return Policy{MaxRootAreaFraction: 0.70, MinArea: 10}
}

// Rank selects the best candidate: prefer explicit accessibility metadata,
// then the deepest node, then the smallest bounding box. Returns false only
// when cands is empty.
func Rank(cands []Candidate, rootArea float64, pol Policy) (Candidate, bool) {
	if len(cands) == 0 {
		return Candidate{}, false
	}

	// Drop full-bleed containers, but only if something usefully sized
	// survives the cut; otherwise fall back to the unfiltered set rather
	// than return nothing.
	working := append([]Candidate(nil), cands...)
	if rootArea > 0 {
		limit := rootArea * pol.MaxRootAreaFraction
		var kept []Candidate
		usable := false
		for _, c := range cands {
			if c.Area <= limit {
				kept = append(kept, c)
				if c.Area > pol.MinArea {
					usable = true
				}
			}
		}
		if usable {
			working = kept
		}
	}

	sortCandidates(working)
	for _, c := range working {
		if c.Area > pol.MinArea {
			return c, true
		}
	}

	// Nothing above the size floor: take the best of the unfiltered set.
	all := make([]Candidate, len(cands))
	copy(all, cands)
	sortCandidates(all)
	return all[0], true
}

// sortCandidates orders by accessibility presence desc, depth desc
// (deepest first), area asc (smallest first). Stable so collection order
// breaks remaining ties deterministically.
func sortCandidates(cands []Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.HasAccessibility != b.HasAccessibility {
			return a.HasAccessibility
		}
		if a.Depth != b.Depth {
			return a.Depth > b.Depth
		}
		return a.Area < b.Area
	})
}
