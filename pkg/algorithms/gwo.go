package algorithms

import (
	"context"
	"math"

	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"

	"github.com/evolab/metabench/pkg/framework"
)

const GWOName = "GWO"

// GWO implements the Grey Wolf Optimizer. The three best wolves seen so far
// (alpha, beta, delta) steer the rest of the pack, and the exploration
// coefficient a decays linearly from 2 to 0 over the run.
type GWO struct {
	problem framework.Problem
	cfg     Config
}

func NewGWO(cfg Config, problem framework.Problem) *GWO {
	cfg.setDefaults()
	return &GWO{problem: problem, cfg: cfg}
}

func (g *GWO) Name() string { return GWOName }

func (g *GWO) Run(ctx context.Context, rng *rand.Rand) (*Result, error) {
	logger := klog.FromContext(ctx).WithValues("algorithm", GWOName)
	bounds := g.problem.Bounds()
	eval := newEvaluator(g.problem)

	positions := initialPopulation(rng, bounds, g.cfg.PopulationSize, g.cfg.InitialSolutions)
	leaders := newPack(len(bounds))
	for _, x := range positions {
		leaders.offer(x, eval.evaluateScalar(x))
	}

	logger.V(2).Info("starting run",
		"populationSize", g.cfg.PopulationSize, "maxIterations", g.cfg.MaxIterations)

	curve := make([]float64, g.cfg.MaxIterations)
	for iter := 0; iter < g.cfg.MaxIterations; iter++ {
		if err := checkCancel(ctx); err != nil {
			return nil, err
		}

		a := 2 - 2*float64(iter)/float64(g.cfg.MaxIterations)
		for i := range positions {
			for d := range positions[i] {
				x1 := hunt(rng, a, leaders.alpha[d], positions[i][d])
				x2 := hunt(rng, a, leaders.beta[d], positions[i][d])
				x3 := hunt(rng, a, leaders.delta[d], positions[i][d])
				positions[i][d] = framework.Clamp((x1+x2+x3)/3, bounds[d])
			}
			leaders.offer(positions[i], eval.evaluateScalar(positions[i]))
		}

		curve[iter] = leaders.alphaFit
		if g.cfg.Progress != nil {
			g.cfg.Progress(iter+1, g.cfg.MaxIterations, leaders.alphaFit)
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

// hunt moves one coordinate toward a leader using the grey wolf encircling
// terms A and C.
func hunt(rng *rand.Rand, a, leader, x float64) float64 {
	A := 2*a*rng.Float64() - a
	C := 2 * rng.Float64()
	return leader - A*math.Abs(C*leader-x)
}

// pack tracks the three best wolves seen so far.
type pack struct {
	alpha, beta, delta          []float64
	alphaFit, betaFit, deltaFit float64
}

func newPack(dim int) *pack {
	return &pack{
		alpha:    make([]float64, dim),
		beta:     make([]float64, dim),
		delta:    make([]float64, dim),
		alphaFit: math.Inf(1),
		betaFit:  math.Inf(1),
		deltaFit: math.Inf(1),
	}
}

// offer updates the leader hierarchy with a freshly evaluated wolf.
func (p *pack) offer(x []float64, fit float64) {
	switch {
	case fit < p.alphaFit:
		p.delta, p.deltaFit = p.beta, p.betaFit
		p.beta, p.betaFit = p.alpha, p.alphaFit
		p.alpha, p.alphaFit = cloneVector(x), fit
	case fit < p.betaFit:
		p.delta, p.deltaFit = p.beta, p.betaFit
		p.beta, p.betaFit = cloneVector(x), fit
	case fit < p.deltaFit:
		p.delta, p.deltaFit = cloneVector(x), fit
	}
}
