package algorithms

import (
	"context"
	"math"

	"golang.org/x/exp/rand"

	"github.com/evolab/metabench/pkg/archive"
	"github.com/evolab/metabench/pkg/framework"
)

// evaluator wraps a problem's objective and constraint functions and counts
// evaluations.
type evaluator struct {
	objectives  []framework.ObjectiveFunc
	constraints []framework.Constraint
	count       int
}

func newEvaluator(p framework.Problem) *evaluator {
	return &evaluator{
		objectives:  p.ObjectiveFuncs(),
		constraints: p.Constraints(),
	}
}

// evaluate computes all objective values for x. Solutions violating any
// constraint receive +Inf on every objective so the search moves away from
// them instead of aborting.
func (e *evaluator) evaluate(x []float64) []float64 {
	e.count++
	res := make([]float64, len(e.objectives))
	for _, c := range e.constraints {
		if !c(x) {
			for i := range res {
				res[i] = math.Inf(1)
			}
			return res
		}
	}
	for i, f := range e.objectives {
		res[i] = f(x)
	}
	return res
}

// evaluateScalar is evaluate for single-objective problems.
func (e *evaluator) evaluateScalar(x []float64) float64 {
	return e.evaluate(x)[0]
}

// initialPopulation seeds the population: warm-start vectors first, clamped
// into the bounds, then uniform random fill. Warm-start vectors of the wrong
// length are skipped.
func initialPopulation(rng *rand.Rand, bounds []framework.Bounds, size int, warm [][]float64) [][]float64 {
	population := make([][]float64, 0, size)
	for _, w := range warm {
		if len(population) == size {
			break
		}
		if len(w) != len(bounds) {
			continue
		}
		x := make([]float64, len(w))
		for d, b := range bounds {
			x[d] = framework.Clamp(w[d], b)
		}
		population = append(population, x)
	}
	for len(population) < size {
		population = append(population, framework.RandomVector(rng, bounds))
	}
	return population
}

// rouletteSelect draws one index with probability proportional to its weight.
// Weights must be non-negative.
func rouletteSelect(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return rng.Intn(len(weights))
	}
	u := rng.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if u < acc {
			return i
		}
	}
	return len(weights) - 1
}

// checkCancel reports the context error once the run should stop.
func checkCancel(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

func cloneVector(x []float64) []float64 {
	c := make([]float64, len(x))
	copy(c, x)
	return c
}

// feedArchive pushes one generation of evaluated solutions into the archive.
func feedArchive(arch *archive.Archive, decisions [][]float64, objectives [][]float64) error {
	candidates := make([]archive.Candidate, len(decisions))
	for i := range decisions {
		candidates[i] = archive.Candidate{Variables: decisions[i], Objectives: objectives[i]}
	}
	return arch.Update(candidates)
}

// minFirstObjective is the convergence proxy reported for multi-objective
// runs: the smallest first-objective value currently in the archive.
func minFirstObjective(arch *archive.Archive) float64 {
	best := math.Inf(1)
	for _, m := range arch.Members() {
		if m.Objectives[0] < best {
			best = m.Objectives[0]
		}
	}
	return best
}
