package algorithms

import (
	"context"

	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"

	"github.com/evolab/metabench/pkg/framework"
)

const MOPSOName = "MOPSO"

// MOPSO particle dynamics defaults: constriction-style inertia with the
// standard acceleration coefficients.
const (
	DefaultInertiaWeight  = 0.729
	DefaultCognitiveCoeff = 1.49445
	DefaultSocialCoeff    = 1.49445
)

// MOPSOConfig holds configuration parameters for MOPSO.
type MOPSOConfig struct {
	MultiConfig

	InertiaWeight  float64
	CognitiveCoeff float64
	SocialCoeff    float64
}

func (c *MOPSOConfig) setDefaults() {
	c.MultiConfig.setDefaults()
	if c.InertiaWeight <= 0 {
		c.InertiaWeight = DefaultInertiaWeight
	}
	if c.CognitiveCoeff <= 0 {
		c.CognitiveCoeff = DefaultCognitiveCoeff
	}
	if c.SocialCoeff <= 0 {
		c.SocialCoeff = DefaultSocialCoeff
	}
}

// MOPSO implements multi-objective particle swarm optimization. Particles
// track a personal best under Pareto dominance and follow a social leader
// sampled from the sparse regions of the external archive.
type MOPSO struct {
	problem framework.Problem
	cfg     MOPSOConfig
}

func NewMOPSO(cfg MOPSOConfig, problem framework.Problem) *MOPSO {
	cfg.setDefaults()
	return &MOPSO{problem: problem, cfg: cfg}
}

func (m *MOPSO) Name() string { return MOPSOName }

func (m *MOPSO) RunFront(ctx context.Context, rng *rand.Rand) (*FrontResult, error) {
	logger := klog.FromContext(ctx).WithValues("algorithm", MOPSOName)
	bounds := m.problem.Bounds()
	eval := newEvaluator(m.problem)
	n := m.cfg.PopulationSize

	arch, err := m.cfg.newArchive(len(m.problem.ObjectiveFuncs()))
	if err != nil {
		return nil, err
	}

	positions := initialPopulation(rng, bounds, n, m.cfg.InitialSolutions)
	velocities := make([][]float64, n)
	objectives := make([][]float64, n)
	pbest := make([][]float64, n)
	pbestObj := make([][]float64, n)
	for i, x := range positions {
		velocities[i] = make([]float64, len(bounds))
		objectives[i] = eval.evaluate(x)
		pbest[i] = cloneVector(x)
		pbestObj[i] = objectives[i]
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

		for i := range positions {
			guide := archiveLeader(rng, arch, pbest[i])
			for d := range positions[i] {
				r1 := rng.Float64()
				r2 := rng.Float64()
				velocities[i][d] = m.cfg.InertiaWeight*velocities[i][d] +
					m.cfg.CognitiveCoeff*r1*(pbest[i][d]-positions[i][d]) +
					m.cfg.SocialCoeff*r2*(guide[d]-positions[i][d])

				x := positions[i][d] + velocities[i][d]
				if x < bounds[d].L || x > bounds[d].H {
					// Bounce: reverse the velocity component and stay on
					// the boundary.
					velocities[i][d] = -velocities[i][d]
					x = framework.Clamp(x, bounds[d])
				}
				positions[i][d] = x
			}
			objectives[i] = eval.evaluate(positions[i])

			// Personal best under Pareto dominance; mutual non-dominance is
			// broken by a coin flip.
			switch {
			case framework.Dominates(objectives[i], pbestObj[i]):
				pbest[i] = cloneVector(positions[i])
				pbestObj[i] = objectives[i]
			case framework.Dominates(pbestObj[i], objectives[i]):
			default:
				if rng.Float64() < 0.5 {
					pbest[i] = cloneVector(positions[i])
					pbestObj[i] = objectives[i]
				}
			}
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
