package framework

import (
	"math"

	"golang.org/x/exp/rand"
)

// Individual represents a solution in the population
type Individual struct {
	Variables  []float64
	Objectives []float64

	// Rank and Distance are populated by NSGA-II style survivor selection.
	Rank     int
	Distance float64
}

// ObjectiveFunc evaluates one objective for a decision vector.
type ObjectiveFunc func([]float64) float64

// ObjectiveSpacePoint represents an N-dimensional point in the objective space.
// As an example, for a problem with 2 objective functions f1 and f2, a point
// in the objective space could be [f1(x'), f2(x')], for the input of x'.
type ObjectiveSpacePoint []float64

// Constraint returns true if the constraint is satisfied and false otherwise.
type Constraint func([]float64) bool

// Bounds is the inclusive box constraint for one decision variable.
type Bounds struct {
	L float64
	H float64
}

// Problem describes the contract an optimization problem needs to implement.
// Single-objective problems return one objective function and a nil true
// front; multi-objective problems return two or more.
type Problem interface {
	Name() string
	Dimension() int
	Bounds() []Bounds
	ObjectiveFuncs() []ObjectiveFunc
	Constraints() []Constraint

	// TrueParetoFront is optional due to the difficulty of finding the true
	// front in some types of problems. When there isn't a way to find the
	// true front, just return nil.
	TrueParetoFront(numPoints int) []ObjectiveSpacePoint
}

// RandomVector draws one decision vector uniformly inside the bounds.
func RandomVector(rng *rand.Rand, bounds []Bounds) []float64 {
	vars := make([]float64, len(bounds))
	for i, b := range bounds {
		vars[i] = b.L + rng.Float64()*(b.H-b.L)
	}
	return vars
}

// InitUniform draws an initial population of n decision vectors uniformly
// inside the bounds.
func InitUniform(rng *rand.Rand, bounds []Bounds, n int) [][]float64 {
	population := make([][]float64, n)
	for i := range population {
		population[i] = RandomVector(rng, bounds)
	}
	return population
}

// Clamp keeps x inside [b.L, b.H].
func Clamp(x float64, b Bounds) float64 {
	return math.Max(b.L, math.Min(b.H, x))
}

// UniformBounds builds a box with the same limits in every dimension.
func UniformBounds(dim int, lo, hi float64) []Bounds {
	b := make([]Bounds, dim)
	for i := range b {
		b[i] = Bounds{L: lo, H: hi}
	}
	return b
}
