package algorithms

import (
	"context"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"k8s.io/klog/v2"

	"github.com/evolab/metabench/pkg/framework"
)

const IGWOName = "IGWO"

// IGWO implements the Improved Grey Wolf Optimizer with dimension
// learning-based hunting. Each wolf builds two candidates, the classic GWO
// move and a neighborhood-learning move, and keeps the better of the two
// only when it improves on the wolf's current position.
type IGWO struct {
	problem framework.Problem
	cfg     Config
}

func NewIGWO(cfg Config, problem framework.Problem) *IGWO {
	cfg.setDefaults()
	return &IGWO{problem: problem, cfg: cfg}
}

func (g *IGWO) Name() string { return IGWOName }

func (g *IGWO) Run(ctx context.Context, rng *rand.Rand) (*Result, error) {
	logger := klog.FromContext(ctx).WithValues("algorithm", IGWOName)
	bounds := g.problem.Bounds()
	eval := newEvaluator(g.problem)
	n := g.cfg.PopulationSize
	dim := len(bounds)

	positions := initialPopulation(rng, bounds, n, g.cfg.InitialSolutions)
	fitness := make([]float64, n)
	leaders := newPack(dim)
	for i, x := range positions {
		fitness[i] = eval.evaluateScalar(x)
		leaders.offer(x, fitness[i])
	}

	logger.V(2).Info("starting run", "populationSize", n, "maxIterations", g.cfg.MaxIterations)

	total := g.cfg.MaxIterations
	curve := make([]float64, total)
	next := make([][]float64, n)
	nextFit := make([]float64, n)
	var neighbors []int

	for iter := 0; iter < total; iter++ {
		if err := checkCancel(ctx); err != nil {
			return nil, err
		}

		a := 2 - 2*float64(iter)/float64(total)
		for i := range positions {
			gwoCand := make([]float64, dim)
			for d := range gwoCand {
				x1 := hunt(rng, a, leaders.alpha[d], positions[i][d])
				x2 := hunt(rng, a, leaders.beta[d], positions[i][d])
				x3 := hunt(rng, a, leaders.delta[d], positions[i][d])
				gwoCand[d] = framework.Clamp((x1+x2+x3)/3, bounds[d])
			}
			gwoFit := eval.evaluateScalar(gwoCand)

			// Dimension learning-based hunting: learn each coordinate from
			// a random neighbor within the radius set by the GWO move and a
			// random member of the whole population. The wolf itself is
			// always inside its own radius, so the neighborhood is never
			// empty.
			radius := floats.Distance(positions[i], gwoCand, 2)
			neighbors = neighbors[:0]
			for j := range positions {
				if floats.Distance(positions[i], positions[j], 2) <= radius {
					neighbors = append(neighbors, j)
				}
			}
			dlhCand := make([]float64, dim)
			for d := range dlhCand {
				nb := positions[neighbors[rng.Intn(len(neighbors))]][d]
				rd := positions[rng.Intn(n)][d]
				dlhCand[d] = framework.Clamp(positions[i][d]+rng.Float64()*(nb-rd), bounds[d])
			}
			dlhFit := eval.evaluateScalar(dlhCand)

			// Greedy selection: the better candidate replaces the wolf only
			// if it improves on the current position.
			cand, candFit := gwoCand, gwoFit
			if dlhFit < gwoFit {
				cand, candFit = dlhCand, dlhFit
			}
			if candFit < fitness[i] {
				next[i], nextFit[i] = cand, candFit
			} else {
				next[i], nextFit[i] = positions[i], fitness[i]
			}
		}

		for i := range positions {
			positions[i], fitness[i] = next[i], nextFit[i]
			leaders.offer(positions[i], fitness[i])
		}

		curve[iter] = leaders.alphaFit
		if g.cfg.Progress != nil {
			g.cfg.Progress(iter+1, total, leaders.alphaFit)
		}
		logger.V(3).Info("iteration", "n", iter+1, "best", leaders.alphaFit)
	}

	logger.V(2).Info("run complete", "best", leaders.alphaFit, "evaluations", eval.count)
	return &Result{
		BestSolution:     cloneVector(leaders.alpha),
		BestFitness:      leaders.alphaFit,
		ConvergenceCurve: curve,
		Evaluations:      eval.count,
	}, nil
}
