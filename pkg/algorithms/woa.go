package algorithms

import (
	"context"
	"math"

	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"

	"github.com/evolab/metabench/pkg/framework"
)

const WOAName = "WOA"

// spiralB defines the shape of the logarithmic spiral used in the bubble-net
// phase.
const spiralB = 1.0

// WOA implements the Whale Optimization Algorithm. Each whale either
// encircles the best solution, spirals toward it, or searches around a
// random whale, chosen per iteration from the shrinking coefficient A and a
// coin flip.
type WOA struct {
	problem framework.Problem
	cfg     Config
}

func NewWOA(cfg Config, problem framework.Problem) *WOA {
	cfg.setDefaults()
	return &WOA{problem: problem, cfg: cfg}
}

func (w *WOA) Name() string { return WOAName }

func (w *WOA) Run(ctx context.Context, rng *rand.Rand) (*Result, error) {
	logger := klog.FromContext(ctx).WithValues("algorithm", WOAName)
	bounds := w.problem.Bounds()
	eval := newEvaluator(w.problem)

	positions := initialPopulation(rng, bounds, w.cfg.PopulationSize, w.cfg.InitialSolutions)
	best := cloneVector(positions[0])
	bestFit := math.Inf(1)
	for _, x := range positions {
		if fit := eval.evaluateScalar(x); fit < bestFit {
			best, bestFit = cloneVector(x), fit
		}
	}

	logger.V(2).Info("starting run",
		"populationSize", w.cfg.PopulationSize, "maxIterations", w.cfg.MaxIterations)

	total := w.cfg.MaxIterations
	curve := make([]float64, total)
	for iter := 0; iter < total; iter++ {
		if err := checkCancel(ctx); err != nil {
			return nil, err
		}

		a := 2 - 2*float64(iter)/float64(total)
		a2 := -1 - float64(iter)/float64(total)

		for i := range positions {
			A := 2*a*rng.Float64() - a
			C := 2 * rng.Float64()
			l := (a2-1)*rng.Float64() + 1
			p := rng.Float64()

			switch {
			case p >= 0.5:
				// Bubble-net attack: spiral toward the best whale.
				for d := range positions[i] {
					dist := math.Abs(best[d] - positions[i][d])
					x := dist*math.Exp(spiralB*l)*math.Cos(2*math.Pi*l) + best[d]
					positions[i][d] = framework.Clamp(x, bounds[d])
				}
			case math.Abs(A) >= 1:
				// Exploration: search around a randomly chosen whale.
				for d := range positions[i] {
					ref := positions[rng.Intn(len(positions))][d]
					x := ref - A*math.Abs(C*ref-positions[i][d])
					positions[i][d] = framework.Clamp(x, bounds[d])
				}
			default:
				// Exploitation: encircle the best whale.
				for d := range positions[i] {
					x := best[d] - A*math.Abs(C*best[d]-positions[i][d])
					positions[i][d] = framework.Clamp(x, bounds[d])
				}
			}

			if fit := eval.evaluateScalar(positions[i]); fit < bestFit {
				best, bestFit = cloneVector(positions[i]), fit
			}
		}

		curve[iter] = bestFit
		if w.cfg.Progress != nil {
			w.cfg.Progress(iter+1, total, bestFit)
		}
		logger.V(3).Info("iteration", "n", iter+1, "best", bestFit)
	}

	logger.V(2).Info("run complete", "best", bestFit, "evaluations", eval.count)
	return &Result{
		BestSolution:     best,
		BestFitness:      bestFit,
		ConvergenceCurve: curve,
		Evaluations:      eval.count,
	}, nil
}
