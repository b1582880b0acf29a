package algorithms

import (
	"context"

	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"

	"github.com/evolab/metabench/pkg/archive"
	"github.com/evolab/metabench/pkg/framework"
)

const MOGWOName = "MOGWO"

// MOGWO implements the multi-objective Grey Wolf Optimizer. The pack has no
// fixed alpha, beta and delta: each wolf samples its three leaders from the
// external archive, biased toward sparse regions of the front to spread the
// approximation.
type MOGWO struct {
	problem framework.Problem
	cfg     MultiConfig
}

func NewMOGWO(cfg MultiConfig, problem framework.Problem) *MOGWO {
	cfg.setDefaults()
	return &MOGWO{problem: problem, cfg: cfg}
}

func (m *MOGWO) Name() string { return MOGWOName }

func (m *MOGWO) RunFront(ctx context.Context, rng *rand.Rand) (*FrontResult, error) {
	logger := klog.FromContext(ctx).WithValues("algorithm", MOGWOName)
	bounds := m.problem.Bounds()
	eval := newEvaluator(m.problem)
	n := m.cfg.PopulationSize

	arch, err := m.cfg.newArchive(len(m.problem.ObjectiveFuncs()))
	if err != nil {
		return nil, err
	}

	positions := initialPopulation(rng, bounds, n, m.cfg.InitialSolutions)
	objectives := make([][]float64, n)
	for i, x := range positions {
		objectives[i] = eval.evaluate(x)
	}
	if err := feedArchive(arch, positions, objectives); err != nil {
		return nil, err
	}

	logger.V(2).Info("starting run",
		"populationSize", n, "maxIterations", m.cfg.MaxIterations, "archiveSize", m.cfg.ArchiveSize)

	total := m.cfg.MaxIterations
	curve := make([]float64, total)
	for iter := 0; iter < total; iter++ {
		if err := checkCancel(ctx); err != nil {
			return nil, err
		}

		a := 2 - 2*float64(iter)/float64(total)
		for i := range positions {
			alpha := archiveLeader(rng, arch, positions[i])
			beta := archiveLeader(rng, arch, positions[i])
			delta := archiveLeader(rng, arch, positions[i])
			for d := range positions[i] {
				x1 := hunt(rng, a, alpha[d], positions[i][d])
				x2 := hunt(rng, a, beta[d], positions[i][d])
				x3 := hunt(rng, a, delta[d], positions[i][d])
				positions[i][d] = framework.Clamp((x1+x2+x3)/3, bounds[d])
			}
			objectives[i] = eval.evaluate(positions[i])
		}

		if err := feedArchive(arch, positions, objectives); err != nil {
			return nil, err
		}

		curve[iter] = minFirstObjective(arch)
		if m.cfg.Progress != nil {
			m.cfg.Progress(iter+1, total, curve[iter])
		}
		logger.V(3).Info("iteration", "n", iter+1, "archiveSize", arch.Len())
	}

	logger.V(2).Info("run complete", "archiveSize", arch.Len(), "evaluations", eval.count)
	decisions, objs := arch.GetAll()
	return &FrontResult{
		Decisions:        decisions,
		Objectives:       objs,
		ConvergenceCurve: curve,
		Evaluations:      eval.count,
	}, nil
}

// archiveLeader samples a guide from the sparse regions of the archive,
// falling back to the follower's own position while the archive is empty.
func archiveLeader(rng *rand.Rand, arch *archive.Archive, fallback []float64) []float64 {
	if member, ok := arch.Select(rng, archive.FavorSparse); ok {
		return member.Variables
	}
	return fallback
}
