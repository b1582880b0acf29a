package archive

import "math"

// densityDivisor fixes each neighborhood half-width at a twentieth of the
// per-objective spread across the current members.
const densityDivisor = 20

// refreshRanks recomputes every member's density rank: the number of other
// members lying within the neighborhood width in every objective dimension
// simultaneously. The test is an axis-aligned box, not a Euclidean ball.
// O(n²·m) over the member count.
func (a *Archive) refreshRanks() {
	if len(a.members) == 0 {
		return
	}
	widths := a.neighborhoodWidths()
	for i := range a.members {
		count := 0
		for j := range a.members {
			if i == j {
				continue
			}
			if withinBox(a.members[i].objectives, a.members[j].objectives, widths) {
				count++
			}
		}
		a.members[i].rank = count
	}
}

// neighborhoodWidths derives the per-dimension box width from the current
// objective spread. A zero spread falls back to width 1 so that a flat
// dimension does not collapse every member into a single neighborhood.
func (a *Archive) neighborhoodWidths() []float64 {
	widths := make([]float64, a.numObj)
	for d := range widths {
		lo, hi := a.members[0].objectives[d], a.members[0].objectives[d]
		for _, r := range a.members[1:] {
			if r.objectives[d] < lo {
				lo = r.objectives[d]
			}
			if r.objectives[d] > hi {
				hi = r.objectives[d]
			}
		}
		w := (hi - lo) / densityDivisor
		if w == 0 {
			w = 1
		}
		widths[d] = w
	}
	return widths
}

func withinBox(a, b []float64, widths []float64) bool {
	for d := range widths {
		if math.Abs(a[d]-b[d]) >= widths[d] {
			return false
		}
	}
	return true
}
