package archive

import (
	"golang.org/x/exp/rand"
)

// SelectionMode biases Select toward a region of the stored front. It is a
// two-case tag, not a strategy hierarchy.
type SelectionMode string

const (
	// FavorSparse prefers members with few neighbors, steering the search
	// toward under-explored regions of the front.
	FavorSparse SelectionMode = "FavorSparse"

	// FavorCrowded prefers members with many neighbors.
	FavorCrowded SelectionMode = "FavorCrowded"
)

// Select draws one member with probability proportional to 1/(rank+1) under
// FavorSparse, or rank+1 under FavorCrowded, using inverse-CDF sampling
// against a single uniform draw from rng. A single-member archive returns
// that member deterministically without consuming a draw. An empty archive
// returns ok=false; that is an expected condition, not an error. Any mode
// other than FavorCrowded behaves as FavorSparse.
//
// This is the one point where archive state steers the host's search, so
// rng must be the run's seeded generator: identical seed and call sequence
// reproduce identical selections.
func (a *Archive) Select(rng *rand.Rand, mode SelectionMode) (Member, bool) {
	switch len(a.members) {
	case 0:
		return Member{}, false
	case 1:
		return a.memberAt(0), true
	}

	weights := make([]float64, len(a.members))
	total := 0.0
	for i, r := range a.members {
		w := float64(r.rank + 1)
		if mode != FavorCrowded {
			w = 1.0 / w
		}
		weights[i] = w
		total += w
	}

	u := rng.Float64() * total
	acc := 0.0
	idx := len(a.members) - 1
	for i, w := range weights {
		acc += w
		if u < acc {
			idx = i
			break
		}
	}
	return a.memberAt(idx), true
}
