// Package algorithms implements the metaheuristic drivers: swarm and
// evolutionary optimizers that share one configuration surface, one result
// shape and one external archive for multi-objective fronts.
//
// Every driver is strictly sequential and draws all randomness from the
// *rand.Rand passed to its run method, so a fixed seed reproduces a run
// bit for bit.
package algorithms

import (
	"context"
	"errors"

	"golang.org/x/exp/rand"
)

// ErrUnknownAlgorithm is returned by New and NewMulti for ids not present in
// the registry.
var ErrUnknownAlgorithm = errors.New("algorithms: unknown algorithm")

// ProgressFunc is invoked after every iteration with the 1-based iteration
// number, the total iteration count and the best fitness found so far. For
// multi-objective runs the fitness is the smallest first-objective value in
// the archive.
type ProgressFunc func(iteration, total int, best float64)

// Optimizer is a single-objective driver.
type Optimizer interface {
	Name() string
	Run(ctx context.Context, rng *rand.Rand) (*Result, error)
}

// MultiObjective is a driver that approximates a Pareto front.
type MultiObjective interface {
	Name() string
	RunFront(ctx context.Context, rng *rand.Rand) (*FrontResult, error)
}

// Result is the outcome of a single-objective run.
type Result struct {
	BestSolution     []float64
	BestFitness      float64
	ConvergenceCurve []float64
	Evaluations      int
}

// FrontResult is the outcome of a multi-objective run: the archive contents
// as parallel decision and objective slices.
type FrontResult struct {
	Decisions        [][]float64
	Objectives       [][]float64
	ConvergenceCurve []float64
	Evaluations      int
}
