package framework

// DominanceFunc is a pure dominance predicate over objective vectors.
// The archive and the multi-objective drivers take the predicate by
// composition, so alternative definitions (maximization, constrained
// dominance) plug in without touching their internals.
type DominanceFunc func(a, b ObjectiveSpacePoint) bool

// Dominates checks if point a dominates point b under minimization:
// a is no worse in every objective and strictly better in at least one.
func Dominates(a, b ObjectiveSpacePoint) bool {
	better := false
	for i := range a {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			better = true
		}
	}
	return better
}

// DominatesMax is the maximization counterpart of Dominates.
func DominatesMax(a, b ObjectiveSpacePoint) bool {
	better := false
	for i := range a {
		if a[i] < b[i] {
			return false
		}
		if a[i] > b[i] {
			better = true
		}
	}
	return better
}

// NonDominatedSet returns the indices of the points not dominated by any
// other point in the input, preserving input order. All-pairs comparison,
// O(n²·m); n stays small here (archive capacity plus one generation's
// batch), so no sorting-based scheme is needed.
func NonDominatedSet(points []ObjectiveSpacePoint, dominates DominanceFunc) []int {
	frontier := make([]int, 0, len(points))
	for i := range points {
		dominated := false
		for j := range points {
			if i != j && dominates(points[j], points[i]) {
				dominated = true
				break
			}
		}
		if !dominated {
			frontier = append(frontier, i)
		}
	}
	return frontier
}

// NonDominatedSort performs non-dominated sorting on the population
func NonDominatedSort(population []Individual) [][]Individual {
	var fronts [][]Individual
	dominated := make(map[int][]int)
	domCount := make([]int, len(population))

	// Calculate domination for each individual
	for i := 0; i < len(population); i++ {
		dominated[i] = []int{}
		for j := 0; j < len(population); j++ {
			if i != j {
				if Dominates(population[i].Objectives, population[j].Objectives) {
					dominated[i] = append(dominated[i], j)
				} else if Dominates(population[j].Objectives, population[i].Objectives) {
					domCount[i]++
				}
			}
		}
	}

	// Find first front
	currentFront := []Individual{}
	currentFrontIndices := []int{}
	for i := 0; i < len(population); i++ {
		if domCount[i] == 0 {
			population[i].Rank = 0
			currentFront = append(currentFront, population[i])
			currentFrontIndices = append(currentFrontIndices, i)
		}
	}
	fronts = append(fronts, currentFront)

	// Find subsequent fronts
	frontIndex := 0
	for len(currentFront) > 0 {
		nextFront := []Individual{}
		nextFrontIndices := []int{}
		for _, idx := range currentFrontIndices {
			for _, dominatedIdx := range dominated[idx] {
				domCount[dominatedIdx]--
				if domCount[dominatedIdx] == 0 {
					population[dominatedIdx].Rank = frontIndex + 1
					nextFront = append(nextFront, population[dominatedIdx])
					nextFrontIndices = append(nextFrontIndices, dominatedIdx)
				}
			}
		}
		frontIndex++
		if len(nextFront) > 0 {
			fronts = append(fronts, nextFront)
		}
		currentFront = nextFront
		currentFrontIndices = nextFrontIndices
	}

	return fronts
}
