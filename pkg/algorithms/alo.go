package algorithms

import (
	"context"
	"sort"

	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"

	"github.com/evolab/metabench/pkg/framework"
)

const ALOName = "ALO"

// ALO implements the Ant Lion Optimizer. Ants take random walks around
// roulette-selected antlions and around the elite, and the walk bounds
// shrink over the run to tighten the traps.
type ALO struct {
	problem framework.Problem
	cfg     Config
}

func NewALO(cfg Config, problem framework.Problem) *ALO {
	cfg.setDefaults()
	return &ALO{problem: problem, cfg: cfg}
}

func (a *ALO) Name() string { return ALOName }

func (a *ALO) Run(ctx context.Context, rng *rand.Rand) (*Result, error) {
	logger := klog.FromContext(ctx).WithValues("algorithm", ALOName)
	bounds := a.problem.Bounds()
	eval := newEvaluator(a.problem)
	n := a.cfg.PopulationSize
	total := a.cfg.MaxIterations

	antlions := initialPopulation(rng, bounds, n, a.cfg.InitialSolutions)
	antlionFit := make([]float64, n)
	for i := range antlions {
		antlionFit[i] = eval.evaluateScalar(antlions[i])
	}
	sort.Sort(byFitness{antlions, antlionFit})

	ants := initialPopulation(rng, bounds, n, nil)
	antFit := make([]float64, n)

	elite := cloneVector(antlions[0])
	eliteFit := antlionFit[0]

	logger.V(2).Info("starting run", "populationSize", n, "maxIterations", total)

	ra := make([]float64, len(bounds))
	re := make([]float64, len(bounds))
	weights := make([]float64, n)
	curve := make([]float64, total)

	for iter := 0; iter < total; iter++ {
		if err := checkCancel(ctx); err != nil {
			return nil, err
		}

		ratio := shrinkRatio(iter, total)

		// Roulette weights favor fitter antlions. The shift keeps every
		// weight finite and positive even when the best fitness is zero.
		for i := range weights {
			weights[i] = 1 / (1 + antlionFit[i] - antlionFit[0])
		}

		for i := range ants {
			guide := antlions[rouletteSelect(rng, weights)]
			walkAround(rng, guide, bounds, iter, total, ratio, ra)
			walkAround(rng, elite, bounds, iter, total, ratio, re)
			for d := range ants[i] {
				ants[i][d] = framework.Clamp((ra[d]+re[d])/2, bounds[d])
			}
			antFit[i] = eval.evaluateScalar(ants[i])
		}

		// Survivors: the best n from the union of antlions and ants.
		combined := make([][]float64, 0, 2*n)
		combined = append(append(combined, antlions...), ants...)
		combinedFit := make([]float64, 0, 2*n)
		combinedFit = append(append(combinedFit, antlionFit...), antFit...)
		sort.Sort(byFitness{combined, combinedFit})
		for i := 0; i < n; i++ {
			antlions[i] = cloneVector(combined[i])
			antlionFit[i] = combinedFit[i]
		}

		if antlionFit[0] < eliteFit {
			elite, eliteFit = cloneVector(antlions[0]), antlionFit[0]
		}
		// The elite always survives as the best antlion.
		antlions[0], antlionFit[0] = cloneVector(elite), eliteFit

		curve[iter] = eliteFit
		if a.cfg.Progress != nil {
			a.cfg.Progress(iter+1, total, eliteFit)
		}
		logger.V(3).Info("iteration", "n", iter+1, "best", eliteFit)
	}

	logger.V(2).Info("run complete", "best", eliteFit, "evaluations", eval.count)
	return &Result{
		BestSolution:     elite,
		BestFitness:      eliteFit,
		ConvergenceCurve: curve,
		Evaluations:      eval.count,
	}, nil
}

// shrinkRatio is the trap-tightening schedule: walk bounds are divided by
// the ratio, which grows sharply in the later phases of the run.
func shrinkRatio(iter, total int) float64 {
	t := float64(iter) / float64(total)
	switch {
	case t > 0.95:
		return 1 + 1e6*t
	case t > 0.9:
		return 1 + 1e5*t
	case t > 0.75:
		return 1 + 1e4*t
	case t > 0.5:
		return 1 + 1e3*t
	case t > 0.1:
		return 1 + 1e2*t
	}
	return 1
}

// walkAround fills out with one random walk step around the guide solution.
// Per dimension the search bounds are shrunk by the ratio and re-centered on
// the guide with a random sign before the walk is normalized into them.
func walkAround(rng *rand.Rand, guide []float64, bounds []framework.Bounds, iter, total int, ratio float64, out []float64) {
	for d := range guide {
		lo := bounds[d].L / ratio
		hi := bounds[d].H / ratio
		if rng.Float64() < 0.5 {
			lo = guide[d] + lo
		} else {
			lo = guide[d] - lo
		}
		if rng.Float64() >= 0.5 {
			hi = guide[d] + hi
		} else {
			hi = guide[d] - hi
		}
		out[d] = walkPosition(rng, iter, total, lo, hi)
	}
}

// walkPosition simulates a full ±1 random walk over the run horizon and
// returns its position at step iter, min-max normalized into [lo, hi].
func walkPosition(rng *rand.Rand, iter, total int, lo, hi float64) float64 {
	x, minX, maxX, at := 0.0, 0.0, 0.0, 0.0
	for s := 1; s <= total; s++ {
		if rng.Float64() > 0.5 {
			x++
		} else {
			x--
		}
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if s == iter+1 {
			at = x
		}
	}
	span := maxX - minX
	if span == 0 {
		return lo
	}
	return (at-minX)*(hi-lo)/span + lo
}

// byFitness sorts decision vectors and their fitness values in tandem,
// ascending by fitness.
type byFitness struct {
	vectors [][]float64
	fitness []float64
}

func (s byFitness) Len() int           { return len(s.fitness) }
func (s byFitness) Less(i, j int) bool { return s.fitness[i] < s.fitness[j] }
func (s byFitness) Swap(i, j int) {
	s.vectors[i], s.vectors[j] = s.vectors[j], s.vectors[i]
	s.fitness[i], s.fitness[j] = s.fitness[j], s.fitness[i]
}
