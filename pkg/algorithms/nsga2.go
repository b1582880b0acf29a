package algorithms

import (
	"context"
	"math"
	"sort"

	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"

	"github.com/evolab/metabench/pkg/framework"
)

const NSGA2Name = "NSGA-II"

// NSGA-II operator defaults.
const (
	DefaultCrossoverProbability = 0.9
	DefaultTournamentSize       = 2
)

// NSGA2Config holds configuration parameters for NSGA-II. The mutation
// probability defaults to 1/dimension.
type NSGA2Config struct {
	MultiConfig

	CrossoverProbability float64
	MutationProbability  float64
	TournamentSize       int
}

func (c *NSGA2Config) setDefaults(dim int) {
	c.MultiConfig.setDefaults()
	if c.CrossoverProbability <= 0 {
		c.CrossoverProbability = DefaultCrossoverProbability
	}
	if c.MutationProbability <= 0 {
		c.MutationProbability = 1.0 / float64(dim)
	}
	if c.TournamentSize < 2 {
		c.TournamentSize = DefaultTournamentSize
	}
}

// NSGAII implements the elitist non-dominated sorting genetic algorithm:
// tournament selection by rank and crowding distance, simulated binary
// crossover and polynomial mutation, with survivors taken front by front
// from the combined parent and offspring population.
type NSGAII struct {
	problem framework.Problem
	cfg     NSGA2Config
}

func NewNSGAII(cfg NSGA2Config, problem framework.Problem) *NSGAII {
	cfg.setDefaults(problem.Dimension())
	return &NSGAII{problem: problem, cfg: cfg}
}

func (n *NSGAII) Name() string { return NSGA2Name }

func (n *NSGAII) RunFront(ctx context.Context, rng *rand.Rand) (*FrontResult, error) {
	logger := klog.FromContext(ctx).WithValues("algorithm", NSGA2Name)
	bounds := n.problem.Bounds()
	eval := newEvaluator(n.problem)

	arch, err := n.cfg.newArchive(len(n.problem.ObjectiveFuncs()))
	if err != nil {
		return nil, err
	}

	vectors := initialPopulation(rng, bounds, n.cfg.PopulationSize, n.cfg.InitialSolutions)
	population := make([]framework.Individual, len(vectors))
	for i, v := range vectors {
		population[i] = framework.Individual{Variables: v, Objectives: eval.evaluate(v)}
	}
	population = rankAndTruncate(population, n.cfg.PopulationSize)

	logger.V(2).Info("starting evolution",
		"populationSize", n.cfg.PopulationSize,
		"generations", n.cfg.MaxIterations,
		"crossoverRate", n.cfg.CrossoverProbability,
		"mutationRate", n.cfg.MutationProbability)

	total := n.cfg.MaxIterations
	curve := make([]float64, total)
	for gen := 0; gen < total; gen++ {
		if err := checkCancel(ctx); err != nil {
			return nil, err
		}

		offspring := make([]framework.Individual, 0, n.cfg.PopulationSize)
		for len(offspring) < n.cfg.PopulationSize {
			p1 := tournamentSelect(rng, population, n.cfg.TournamentSize)
			p2 := tournamentSelect(rng, population, n.cfg.TournamentSize)
			c1, c2 := sbxCrossover(rng, p1.Variables, p2.Variables, bounds, n.cfg.CrossoverProbability)
			polynomialMutate(rng, c1, bounds, n.cfg.MutationProbability)
			polynomialMutate(rng, c2, bounds, n.cfg.MutationProbability)
			offspring = append(offspring, framework.Individual{Variables: c1, Objectives: eval.evaluate(c1)})
			if len(offspring) < n.cfg.PopulationSize {
				offspring = append(offspring, framework.Individual{Variables: c2, Objectives: eval.evaluate(c2)})
			}
		}

		population = rankAndTruncate(append(population, offspring...), n.cfg.PopulationSize)

		decisions := make([][]float64, len(population))
		objectives := make([][]float64, len(population))
		for i, ind := range population {
			decisions[i] = ind.Variables
			objectives[i] = ind.Objectives
		}
		if err := feedArchive(arch, decisions, objectives); err != nil {
			return nil, err
		}

		curve[gen] = minFirstObjective(arch)
		if n.cfg.Progress != nil {
			n.cfg.Progress(gen+1, total, curve[gen])
		}
		logger.V(3).Info("generation", "n", gen+1, "archiveSize", arch.Len())
	}

	logger.V(2).Info("evolution complete", "archiveSize", arch.Len(), "evaluations", eval.count)
	frontDecisions, frontObjectives := arch.GetAll()
	return &FrontResult{
		Decisions:        frontDecisions,
		Objectives:       frontObjectives,
		ConvergenceCurve: curve,
		Evaluations:      eval.count,
	}, nil
}

// rankAndTruncate runs non-dominated sorting and crowding on the population
// and keeps the best size individuals: whole fronts first, the last front
// broken by descending crowding distance.
func rankAndTruncate(population []framework.Individual, size int) []framework.Individual {
	fronts := framework.NonDominatedSort(population)

	next := make([]framework.Individual, 0, size)
	frontIndex := 0
	for frontIndex < len(fronts) && len(next)+len(fronts[frontIndex]) <= size {
		crowdingDistance(fronts[frontIndex])
		next = append(next, fronts[frontIndex]...)
		frontIndex++
	}
	if len(next) < size && frontIndex < len(fronts) {
		crowdingDistance(fronts[frontIndex])
		sort.Slice(fronts[frontIndex], func(i, j int) bool {
			return fronts[frontIndex][i].Distance > fronts[frontIndex][j].Distance
		})
		next = append(next, fronts[frontIndex][:size-len(next)]...)
	}
	return next
}

// crowdingDistance calculates crowding distance for individuals in a front.
func crowdingDistance(front []framework.Individual) {
	if len(front) <= 2 {
		for i := range front {
			front[i].Distance = math.Inf(1)
		}
		return
	}

	numObjectives := len(front[0].Objectives)
	for i := range front {
		front[i].Distance = 0
	}

	for m := 0; m < numObjectives; m++ {
		sort.Slice(front, func(i, j int) bool {
			return front[i].Objectives[m] < front[j].Objectives[m]
		})

		// Boundary points always survive.
		front[0].Distance = math.Inf(1)
		front[len(front)-1].Distance = math.Inf(1)

		objectiveRange := front[len(front)-1].Objectives[m] - front[0].Objectives[m]
		if objectiveRange == 0 {
			continue
		}

		for i := 1; i < len(front)-1; i++ {
			front[i].Distance += (front[i+1].Objectives[m] - front[i-1].Objectives[m]) / objectiveRange
		}
	}
}

// tournamentSelect picks the individual with the best rank, breaking ties by
// crowding distance.
func tournamentSelect(rng *rand.Rand, population []framework.Individual, tournamentSize int) framework.Individual {
	if tournamentSize < 2 {
		tournamentSize = 2
	}
	best := population[rng.Intn(len(population))]

	for i := 1; i < tournamentSize; i++ {
		contestant := population[rng.Intn(len(population))]
		if contestant.Rank < best.Rank || (contestant.Rank == best.Rank && contestant.Distance > best.Distance) {
			best = contestant
		}
	}

	return best
}

// sbxCrossover performs simulated binary crossover, returning two children
// clamped into the bounds. With probability 1-rate the parents are copied
// unchanged.
func sbxCrossover(rng *rand.Rand, p1, p2 []float64, bounds []framework.Bounds, rate float64) ([]float64, []float64) {
	c1 := cloneVector(p1)
	c2 := cloneVector(p2)
	if rng.Float64() >= rate {
		return c1, c2
	}

	for i := range c1 {
		beta := 0.0
		if rng.Float64() <= 0.5 {
			beta = math.Pow(2*rng.Float64(), 1.0/3.0)
		} else {
			beta = math.Pow(1.0/(2*(1.0-rng.Float64())), 1.0/3.0)
		}

		c1[i] = 0.5 * ((1+beta)*p1[i] + (1-beta)*p2[i])
		c2[i] = 0.5 * ((1-beta)*p1[i] + (1+beta)*p2[i])

		c1[i] = framework.Clamp(c1[i], bounds[i])
		c2[i] = framework.Clamp(c2[i], bounds[i])
	}
	return c1, c2
}

// polynomialMutate perturbs each variable with the given probability, scaled
// by the variable's range.
func polynomialMutate(rng *rand.Rand, x []float64, bounds []framework.Bounds, rate float64) {
	for i := range x {
		if rng.Float64() < rate {
			delta := 0.0
			if rng.Float64() <= 0.5 {
				delta = math.Pow(2*rng.Float64(), 1.0/3.0) - 1
			} else {
				delta = 1 - math.Pow(2*(1-rng.Float64()), 1.0/3.0)
			}

			x[i] = framework.Clamp(x[i]+delta*(bounds[i].H-bounds[i].L), bounds[i])
		}
	}
}
